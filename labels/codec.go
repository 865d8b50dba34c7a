package labels

import (
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// Serialize encodes a label list as its JSON-array transport string. A nil or empty
// list encodes as the absent marker (the empty string) rather than "[]".
func Serialize(list []string) string {
	if len(list) == 0 {
		return ""
	}
	w := jwriter.NewWriter()
	arr := w.Array()
	for _, label := range list {
		w.String(label)
	}
	arr.End()
	return string(w.Bytes())
}

// Deserialize decodes a transport string produced by Serialize. Absent, empty, or
// malformed transport values yield nil (absent) rather than an error: a bad stored
// label list must never make an entity unreadable.
func Deserialize(transport string) []string {
	if transport == "" {
		return nil
	}
	r := jreader.NewReader([]byte(transport))
	var list []string
	arr := r.Array()
	for arr.Next() {
		list = append(list, r.String())
	}
	if r.Error() != nil || len(list) == 0 {
		return nil
	}
	return list
}

package labels

// OptLabels represents an optional label list. The zero value OptLabels{} is valid and
// undefined (IsDefined() is false, Values() is nil), matching how entities omit absent
// tag sets on the wire.
type OptLabels struct {
	list []string
}

// NewOptLabels creates an OptLabels wrapping a copy of the given list. An empty or nil
// list yields the undefined value.
func NewOptLabels(list []string) OptLabels {
	if len(list) == 0 {
		return OptLabels{}
	}
	copied := make([]string, len(list))
	copy(copied, list)
	return OptLabels{list: copied}
}

// IsDefined is true if this instance has a value (Values() is not nil).
func (o OptLabels) IsDefined() bool {
	return o.list != nil
}

// Values returns a copy of the wrapped list, or nil if undefined.
func (o OptLabels) Values() []string {
	if o.list == nil {
		return nil
	}
	copied := make([]string, len(o.list))
	copy(copied, o.list)
	return copied
}

// String returns the transport encoding, or "" if undefined.
func (o OptLabels) String() string {
	return Serialize(o.list)
}

// MarshalText encodes the value in its transport form.
func (o OptLabels) MarshalText() ([]byte, error) {
	return []byte(Serialize(o.list)), nil
}

// UnmarshalText decodes a transport value, treating malformed input as absent, using
// the same logic as Deserialize.
func (o *OptLabels) UnmarshalText(data []byte) error {
	o.list = Deserialize(string(data))
	return nil
}

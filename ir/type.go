package ir

import "fmt"

type Type int

const (
	StringType Type = iota
	NumberType
	DiscriminatorType
	ListType
	RecordType
	CommentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		StringType:        "String",
		NumberType:        "Number",
		DiscriminatorType: "Discriminator",
		ListType:          "List",
		RecordType:        "Record",
		CommentType:       "Comment",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"String":        StringType,
		"Number":        NumberType,
		"Discriminator": DiscriminatorType,
		"List":          ListType,
		"Record":        RecordType,
		"Comment":       CommentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		StringType,
		NumberType,
		DiscriminatorType,
		ListType,
		RecordType,
		CommentType,
	}
}

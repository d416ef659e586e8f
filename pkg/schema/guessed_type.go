/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: guessed_type.go
Description: The type lattice used by schema guessing. A GuessedType is a tag plus an
optional payload; timestamps carry either a raw example or a resolved format.
*/

package schema

import "strings"

// Tag is the kind of a guessed column type
type Tag uint8

const (
	// TagNone marks a value that says nothing about its column
	TagNone Tag = iota
	TagBoolean
	TagLong
	TagDouble
	TagString
	TagJSON
	TagTimestamp
)

var tagNames = [...]string{
	TagNone:      "",
	TagBoolean:   "boolean",
	TagLong:      "long",
	TagDouble:    "double",
	TagString:    "string",
	TagJSON:      "json",
	TagTimestamp: "timestamp",
}

// String returns the type name used in column descriptors
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return ""
}

// GuessedType is a guessed column type. The zero value is "none".
type GuessedType struct {
	tag     Tag
	payload string
}

// Singleton types without payload
var (
	TypeBoolean = GuessedType{tag: TagBoolean}
	TypeLong    = GuessedType{tag: TagLong}
	TypeDouble  = GuessedType{tag: TagDouble}
	TypeString  = GuessedType{tag: TagString}
	TypeJSON    = GuessedType{tag: TagJSON}
)

// Timestamp returns a timestamp type carrying a raw example or a format
func Timestamp(payload string) GuessedType {
	return GuessedType{tag: TagTimestamp, payload: payload}
}

func (t GuessedType) Tag() Tag         { return t.tag }
func (t GuessedType) Payload() string  { return t.payload }
func (t GuessedType) IsNone() bool     { return t.tag == TagNone }
func (t GuessedType) HasPayload() bool { return t.payload != "" }

// String returns the type name, with the payload for timestamps
func (t GuessedType) String() string {
	if t.HasPayload() {
		return t.tag.String() + "(" + t.payload + ")"
	}
	return t.tag.String()
}

// TypeEquals compares tags only
func (t GuessedType) TypeEquals(other GuessedType) bool {
	return t.tag == other.tag
}

// Equals compares tags and payloads
func (t GuessedType) Equals(other GuessedType) bool {
	return t == other
}

// Compare orders types by payload when both carry one, otherwise by name
func (t GuessedType) Compare(other GuessedType) int {
	if t.HasPayload() && other.HasPayload() {
		return strings.Compare(t.payload, other.payload)
	}
	return strings.Compare(t.tag.String(), other.tag.String())
}

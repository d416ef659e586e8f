/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: coalesce.go
Description: Merging of per-row classifications into one column type. Differing types
are resolved through a fixed precedence table; timestamp columns get their format
re-guessed over every timestamp example in the column.
*/

package schema

// tagPair is a pair of tags sorted by GuessedType.Compare
type tagPair struct {
	first  Tag
	second Tag
}

// coalesceTable holds every pair that does not fall back to string
var coalesceTable = map[tagPair]GuessedType{
	{TagDouble, TagLong}:    TypeDouble,
	{TagBoolean, TagLong}:   TypeLong,
	{TagLong, TagTimestamp}: TypeLong,
}

// Coalesce merges two classifications. It is commutative up to the payload
// kept for type-equal operands, where the left one wins.
func Coalesce(a, b GuessedType) GuessedType {
	switch {
	case a.IsNone():
		return b
	case b.IsNone():
		return a
	case a.TypeEquals(b):
		return a
	}

	first, second := a, b
	if first.Compare(second) > 0 {
		first, second = second, first
	}
	if merged, ok := coalesceTable[tagPair{first.tag, second.tag}]; ok {
		return merged
	}
	return TypeString
}

// MergeColumn folds a column's classifications into its final type.
// The result is never none; timestamps always carry a resolved format.
func (c *Classifier) MergeColumn(types []GuessedType) GuessedType {
	var merged GuessedType
	for _, t := range types {
		merged = Coalesce(merged, t)
	}

	switch merged.tag {
	case TagNone:
		return TypeString
	case TagTimestamp:
		examples := make([]string, 0, len(types))
		for _, t := range types {
			if t.tag == TagTimestamp {
				examples = append(examples, t.payload)
			}
		}
		format, ok := c.timeFormat.Guess(examples)
		if !ok || format == "" {
			return TypeString
		}
		return Timestamp(format)
	}
	return merged
}

// ClassifyColumn classifies every value of a column and merges the result
func (c *Classifier) ClassifyColumn(values []any) GuessedType {
	types := make([]GuessedType, len(values))
	for i, v := range values {
		types[i] = c.Classify(v)
	}
	return c.MergeColumn(types)
}

package valfmt

import "strconv"

// DefaultPathSeparator joins path segments in [Flatten] keys.
const DefaultPathSeparator = "/"

// Flatten collapses nested arrays and objects into a single object whose
// keys are the joined paths to each leaf, such as "users/0/name". Array
// indices are path segments. Empty containers become empty-string leaves and
// a scalar root is stored under the empty key. An empty sep means
// [DefaultPathSeparator].
//
// An empty key adds no segment, so {"": {"a": 1}, "a": 2} yields two leaves
// named "a". They collide like repeated keys in [Object]: the later value
// wins at the earlier position.
//
// Flatten each row before [EncodeCSV] to keep nested data in the output.
func Flatten(v Value, sep string) Value {
	if sep == "" {
		sep = DefaultPathSeparator
	}
	var members []Member
	flattenInto(&members, "", v, sep)
	return Object(members...)
}

func flattenInto(out *[]Member, prefix string, v Value, sep string) {
	switch v.kind {
	case KindObject:
		if len(v.members) == 0 && prefix != "" {
			*out = append(*out, Field(prefix, String("")))
			return
		}
		for _, m := range v.members {
			flattenInto(out, joinPath(prefix, m.Key, sep), m.Value, sep)
		}
	case KindArray:
		if len(v.items) == 0 && prefix != "" {
			*out = append(*out, Field(prefix, String("")))
			return
		}
		for i, item := range v.items {
			flattenInto(out, joinPath(prefix, strconv.Itoa(i), sep), item, sep)
		}
	default:
		*out = append(*out, Field(prefix, v))
	}
}

func joinPath(prefix, segment, sep string) string {
	if prefix == "" {
		return segment
	}
	return prefix + sep + segment
}

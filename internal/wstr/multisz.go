package wstr

// EncodeMulti encodes an ordered list of strings into the flat multi-string
// wire form: each string's UTF-16LE units followed by one NUL, with one
// extra NUL after the last string. An empty list encodes to exactly two NUL
// units. Strings containing NUL are rejected.
//
// An empty string element terminates the list early on decode; the wire form
// cannot represent it, so round-tripping stops at the first one.
func EncodeMulti(list []string) ([]byte, error) {
	if len(list) == 0 {
		return []byte{0, 0, 0, 0}, nil
	}

	total := 2 // final terminator unit
	for _, s := range list {
		total += len(Units(s)) + 1
	}

	buf := make([]byte, 0, total*2)
	for _, s := range list {
		b, err := Encode(s)
		if err != nil {
			return nil, err
		}
		buf = append(buf, b...)
		buf = append(buf, 0, 0)
	}
	buf = append(buf, 0, 0)

	return buf, nil
}

// DecodeMulti decodes the flat multi-string wire form back into a list,
// stopping at the first empty segment.
func DecodeMulti(data []byte) ([]string, error) {
	if len(data)%2 != 0 {
		return nil, ErrOddLength
	}
	if len(data) < 2 || data[len(data)-1] != 0 || data[len(data)-2] != 0 {
		return nil, ErrMissingTerminator
	}

	var result []string
	start := 0
	for i := 0; i+1 < len(data); i += 2 {
		if data[i] == 0 && data[i+1] == 0 {
			if i == start {
				break
			}
			result = append(result, decodeUTF16LE(data[start:i]))
			start = i + 2
		}
	}
	return result, nil
}

package binstamp

import "fmt"

// hexFallbackPair renders the "(0x<hi> 0x<lo>)" fallback used by formats
// whose wire layout is a pair of words (FAT's date/time, FILETIME's and
// NSF's upper/lower), per spec §9's hex-fallback policy.
func hexFallbackPair(hi, lo uint32, hexDigits int) string {
	return fmt.Sprintf("(0x%0*x 0x%0*x)", hexDigits, hi, hexDigits, lo)
}

// hexFallbackSingle renders the "(0x<word>)" fallback used by formats
// whose wire layout is a single word (HFS, both POSIX widths, and
// FLOATINGTIME's raw bit pattern).
func hexFallbackSingle(word uint64, hexDigits int) string {
	return fmt.Sprintf("(0x%0*x)", hexDigits, word)
}

// writeFallback writes s into buf starting at *idx plus a terminating NUL,
// after checking there is room; it returns 1 on success or -1 if buf is
// too small.
func writeFallback[T codeUnit](buf []T, idx *int, s string, sink ErrorSink, context string) int {
	if *idx < 0 || *idx+len(s)+1 > len(buf) {
		report(sink, DomainArguments, CodeValueTooSmall, context)
		return -1
	}
	writeASCII(buf, idx, s)
	buf[*idx] = 0
	*idx++
	return 1
}

// renderOrFallback is the shared per-format-type rendering step described
// in spec §4.4: try DateTimeValues' renderer first, and if it rejects
// values (the "0" result), write the hex fallback instead.
func renderOrFallback[T codeUnit](buf []T, idx *int, flags Flags, format FormatType, values DateTimeValues, fallback string, sink ErrorSink, context string) int {
	result := CopyToStringWithIndex(values, buf, idx, flags, format, sink)
	if result != 0 {
		return result
	}
	return writeFallback(buf, idx, fallback, sink, context)
}

// renderToString is the byte-width convenience wrapper every format type's
// Render method delegates to: it sizes its own buffer (the larger of the
// values-based size and the fallback width) and renders into it.
func renderToString(flags Flags, format FormatType, values DateTimeValues, fallback string) (string, error) {
	size, err := GetStringSize(flags, format)
	if err != nil {
		return "", err
	}
	if fb := len(fallback) + 1; fb > size {
		size = fb
	}

	buf := make([]byte, size)
	idx := 0
	switch renderOrFallback(buf, &idx, flags, format, values, fallback, nil, "Render") {
	case 1:
		return string(buf[:idx-1]), nil
	default:
		return "", NewError(DomainArguments, CodeInvalidValue, "Render")
	}
}

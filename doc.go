// Package binstamp decodes, validates, and renders the family of
// platform-specific binary date/time stamps encountered in digital-forensics
// contexts: Microsoft FILETIME, FAT packed date/time, Apple HFS/HFS+ time,
// POSIX time (in its 32/64-bit, signed/unsigned, seconds/micro/nanosecond
// variants), Lotus NSF timedate, Microsoft SYSTEMTIME, and OLE FLOATINGTIME.
//
// Every format decodes into the shared DateTimeValues record, which renders
// as either CTIME-style ("Mmm dd, yyyy HH:MM:SS") or ISO-8601
// ("yyyy-mm-ddTHH:MM:SS") text, with optional millisecond, microsecond, or
// nanosecond fractions, into caller-supplied buffers of three character
// widths: UTF-8 bytes, UTF-16 code units, and UTF-32 code units. When the
// decoded fields fail validation, the renderer falls back to a hexadecimal
// representation of the raw wire words instead of failing the call; the
// exception is SYSTEMTIME, which has no hex fallback and reports the
// validation failure instead.
//
// This package performs no time-zone lookups, no leap-second handling, no
// astronomical calendar conversions, no DST reconstruction, and no text
// parsing back into binary; it only decodes, validates, and renders.
package binstamp

package command

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// codepages maps the console codepage names accepted in configuration to
// their decoders. Console tools on Windows emit the OEM or ANSI codepage of
// the system locale, not UTF-8, so captured bytes must be decoded before they
// are shown to the user or matched against.
var codepages = map[string]*charmap.Charmap{
	"cp437":  charmap.CodePage437,
	"cp850":  charmap.CodePage850,
	"cp852":  charmap.CodePage852,
	"cp866":  charmap.CodePage866,
	"cp1250": charmap.Windows1250,
	"cp1251": charmap.Windows1251,
	"cp1252": charmap.Windows1252,
}

// KnownEncoding reports whether name is a codepage the executor can decode.
// The empty string and UTF-8 aliases are accepted as passthrough.
func KnownEncoding(name string) bool {
	name = normalizeEncoding(name)
	if name == "" || name == "utf-8" {
		return true
	}
	_, ok := codepages[name]
	return ok
}

// decodeConsole decodes captured console output using the named codepage.
// Unknown names and undecodable input fall back to a best-effort byte-for-byte
// conversion, so a wrong codepage degrades the text but never fails the call.
func decodeConsole(b []byte, encoding string) string {
	if len(b) == 0 {
		return ""
	}
	cm, ok := codepages[normalizeEncoding(encoding)]
	if !ok {
		return string(b)
	}
	decoded, err := cm.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

// normalizeEncoding accepts the common spellings: "CP850", "cp 850", "850".
func normalizeEncoding(name string) string {
	name = strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", ""))
	if name == "utf8" {
		return "utf-8"
	}
	if name != "" && !strings.HasPrefix(name, "cp") && !strings.HasPrefix(name, "utf") {
		name = "cp" + name
	}
	return name
}

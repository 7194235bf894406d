// Package locale provides the ordered key→string Mapping used by every other package,
// together with the codecs that read and write locale files.
//
// # Ordering
//
// Key order matters: the order of the base locale file defines the row order of the editor,
// and exported files keep the order of the original target file. Mapping therefore keeps
// insertion order and never sorts on its own.
//
// # Formats
//
//   - JSON: flat object of strings. Output uses 2-space indentation and ends with a newline.
//   - YAML: flat mapping of scalars.
//
// # Usage
//
//	m, err := locale.Decode(data, locale.FormatJSON)
//	if err != nil {
//	    return err
//	}
//	m.Set("greet", "Hello")
//	out, _ := locale.Encode(m, locale.FormatJSON)
package locale

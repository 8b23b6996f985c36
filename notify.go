package imgfont

import "sort"

// MarkChangedFonts returns the entities whose text references a font
// named by one of the events, in ascending entity order so that the
// host's follow-up layout passes run deterministically.
//
// Feed it the result of [Library.DrainFontEvents] once per tick and
// re-sync exactly the entities it returns; texts using unaffected
// fonts are left alone.
func MarkChangedFonts(events []FontEvent, texts map[EntityID]*Text) []EntityID {
	if len(events) == 0 || len(texts) == 0 { return nil }

	changed := make(map[FontHandle]bool, len(events))
	for _, event := range events { changed[event.Font] = true }

	var entities []EntityID
	for entity, text := range texts {
		if changed[text.Font] { entities = append(entities, entity) }
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i] < entities[j] })
	return entities
}

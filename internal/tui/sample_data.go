package tui

import "github.com/nahw-app/nahw/internal/models"

// LessonMenu returns the built-in lesson menu. Sections without sub-items
// open directly instead of expanding.
func LessonMenu() []models.MenuSection {
	return []models.MenuSection{
		{
			Main: models.MenuItem{ID: "alphabet", Title: "Alphabet", Subtitle: "الحروف الهجائية", Icon: "ا", Color: "primary"},
		},
		{
			Main: models.MenuItem{ID: "nouns", Title: "Nouns", Subtitle: "الأسماء", Icon: "📗", Color: "emerald-600"},
			SubItems: []models.MenuItem{
				{ID: "nouns-gender", Title: "Gender", Subtitle: "المذكر والمؤنث", Icon: "⚥", Color: "emerald-500"},
				{ID: "nouns-number", Title: "Singular, dual, plural", Subtitle: "المفرد والمثنى والجمع", Icon: "#", Color: "emerald-700"},
				{ID: "nouns-cases", Title: "Cases", Subtitle: "الإعراب", Icon: "◆", Color: "teal-600"},
			},
		},
		{
			Main: models.MenuItem{ID: "verbs", Title: "Verbs", Subtitle: "الأفعال", Icon: "📙", Color: "orange-600"},
			SubItems: []models.MenuItem{
				{ID: "verbs-past", Title: "Past tense", Subtitle: "الفعل الماضي", Icon: "◀", Color: "orange-500"},
				{ID: "verbs-present", Title: "Present tense", Subtitle: "الفعل المضارع", Icon: "▶", Color: "orange-700"},
				{ID: "verbs-command", Title: "Command", Subtitle: "فعل الأمر", Icon: "!", Color: "red-600"},
			},
		},
		{
			Main: models.MenuItem{ID: "pronouns", Title: "Pronouns", Subtitle: "الضمائر", Icon: "📘", Color: "blue-600"},
			SubItems: []models.MenuItem{
				{ID: "pronouns-detached", Title: "Detached pronouns", Subtitle: "الضمائر المنفصلة", Icon: "👤", Color: "blue-500"},
				{ID: "pronouns-attached", Title: "Attached pronouns", Subtitle: "الضمائر المتصلة", Icon: "🔗", Color: "indigo-600"},
				{ID: "pronouns-demonstrative", Title: "Demonstratives", Subtitle: "أسماء الإشارة", Icon: "👉", Color: "purple-600"},
			},
		},
		{
			Main: models.MenuItem{ID: "vocab", Title: "Vocabulary", Subtitle: "المفردات", Icon: "📕", Color: "accent"},
			SubItems: []models.MenuItem{
				{ID: "vocab-family", Title: "Family", Subtitle: "الأسرة", Icon: "👪", Color: "pink-600"},
				{ID: "vocab-home", Title: "Home", Subtitle: "البيت", Icon: "🏠", Color: "amber-600"},
			},
		},
	}
}

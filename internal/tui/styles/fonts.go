package styles

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// FontFamily is a logical font family used by lesson content.
type FontFamily string

const (
	FontArabic FontFamily = "arabic"
	FontUrdu   FontFamily = "urdu"
	FontSans   FontFamily = "sans"
	FontSerif  FontFamily = "serif"
	FontMono   FontFamily = "mono"
)

// FontFamilies lists the logical families in display order.
var FontFamilies = []FontFamily{FontArabic, FontUrdu, FontSans, FontSerif, FontMono}

// ParseFontFamily maps a name onto a logical family.
func ParseFontFamily(name string) (FontFamily, bool) {
	family := FontFamily(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range FontFamilies {
		if family == known {
			return family, true
		}
	}
	return "", false
}

// Candidate platform families, most preferred first.
var fontCandidates = map[string]map[FontFamily][]string{
	"linux": {
		FontArabic: {"Noto Naskh Arabic", "Amiri", "Scheherazade New", "DejaVu Sans"},
		FontUrdu:   {"Noto Nastaliq Urdu", "Jameel Noori Nastaleeq", "Noto Naskh Arabic"},
		FontSans:   {"Noto Sans", "DejaVu Sans", "Liberation Sans"},
		FontSerif:  {"Noto Serif", "DejaVu Serif", "Liberation Serif"},
		FontMono:   {"JetBrains Mono", "DejaVu Sans Mono", "Liberation Mono"},
	},
	"darwin": {
		FontArabic: {"Geeza Pro", "Al Nile", "Baghdad"},
		FontUrdu:   {"Noto Nastaliq Urdu", "Geeza Pro"},
		FontSans:   {"Helvetica Neue", "Helvetica"},
		FontSerif:  {"Times New Roman", "Georgia"},
		FontMono:   {"Menlo", "Monaco"},
	},
	"windows": {
		FontArabic: {"Traditional Arabic", "Arabic Typesetting", "Segoe UI"},
		FontUrdu:   {"Urdu Typesetting", "Jameel Noori Nastaleeq"},
		FontSans:   {"Segoe UI", "Arial"},
		FontSerif:  {"Times New Roman", "Georgia"},
		FontMono:   {"Consolas", "Courier New"},
	},
}

// Windows ships several families under 8.3-style file names.
var fontFileAliases = map[string]string{
	"trado":    "traditionalarabic",
	"arabtype": "arabictypesetting",
	"urdtype":  "urdutypesetting",
	"consola":  "consolas",
	"times":    "timesnewroman",
	"cour":     "couriernew",
}

var fontExtensions = map[string]bool{".ttf": true, ".otf": true, ".ttc": true}

// FontCatalog reports which platform font families are installed.
type FontCatalog interface {
	Has(family string) bool
}

// FontSet is a FontCatalog backed by normalized family names.
type FontSet map[string]struct{}

// NewFontSet builds a set from family names.
func NewFontSet(families ...string) FontSet {
	set := make(FontSet, len(families))
	for _, family := range families {
		set.Add(family)
	}
	return set
}

// Add records a family as installed.
func (s FontSet) Add(family string) {
	if key := fontKey(family); key != "" {
		s[key] = struct{}{}
	}
}

// Has implements FontCatalog.
func (s FontSet) Has(family string) bool {
	_, ok := s[fontKey(family)]
	return ok
}

// DefaultFontDirs returns the conventional font directories for goos.
func DefaultFontDirs(goos string) []string {
	home, _ := os.UserHomeDir()
	switch goos {
	case "darwin":
		dirs := []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
		return dirs
	case "windows":
		dirs := []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
		if local := os.Getenv("LOCALAPPDATA"); local != "" {
			dirs = append(dirs, filepath.Join(local, "Microsoft", "Windows", "Fonts"))
		}
		return dirs
	default:
		dirs := []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home != "" {
			dirs = append(dirs, filepath.Join(home, ".local", "share", "fonts"), filepath.Join(home, ".fonts"))
		}
		return dirs
	}
}

// ScanFontDirs indexes font files found under dirs. Directories that do not
// exist are skipped.
func ScanFontDirs(dirs []string) (FontSet, error) {
	set := FontSet{}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
					return nil
				}
				return err
			}
			if d.IsDir() || !fontExtensions[strings.ToLower(filepath.Ext(path))] {
				return nil
			}
			addFontFile(set, d.Name())
			return nil
		})
		if err != nil {
			return set, err
		}
	}
	return set, nil
}

func addFontFile(set FontSet, fileName string) {
	base := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if idx := strings.Index(base, "-"); idx > 0 {
		base = base[:idx]
	}
	key := fontKey(base)
	if alias, ok := fontFileAliases[key]; ok {
		key = alias
	}
	set.Add(key)
}

func fontKey(name string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(replacer.Replace(strings.TrimSpace(name)))
}

// FontResolver picks an installed platform family for a logical family.
type FontResolver struct {
	catalog FontCatalog
	goos    string
}

// NewFontResolver returns a resolver for goos. An empty goos uses the
// running platform.
func NewFontResolver(catalog FontCatalog, goos string) *FontResolver {
	if goos == "" {
		goos = runtime.GOOS
	}
	return &FontResolver{catalog: catalog, goos: goos}
}

// Candidates lists the platform families tried for family, in order.
func (r *FontResolver) Candidates(family FontFamily) []string {
	table, ok := fontCandidates[r.goos]
	if !ok {
		table = fontCandidates["linux"]
	}
	return table[family]
}

// Resolve returns the first installed candidate for family, or "" so the
// platform default font is used.
func (r *FontResolver) Resolve(family FontFamily) string {
	if r == nil || r.catalog == nil {
		return ""
	}
	for _, candidate := range r.Candidates(family) {
		if r.catalog.Has(candidate) {
			return candidate
		}
	}
	return ""
}

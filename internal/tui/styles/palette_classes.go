package styles

// ClassPalette maps raw palette classes to concrete colors. It is shared by
// both modes and consulted after the mode palette, so a theme can shadow a
// class for one mode.
var ClassPalette = Palette{
	"slate-100": "#F1F5F9", "slate-300": "#CBD5E1", "slate-500": "#64748B",
	"slate-600": "#475569", "slate-700": "#334155", "slate-900": "#0F172A",

	"gray-100": "#F3F4F6", "gray-300": "#D1D5DB", "gray-500": "#6B7280",
	"gray-600": "#4B5563", "gray-700": "#374151", "gray-900": "#111827",

	"red-100": "#FEE2E2", "red-300": "#FCA5A5", "red-500": "#EF4444",
	"red-600": "#DC2626", "red-700": "#B91C1C", "red-900": "#7F1D1D",

	"orange-100": "#FFEDD5", "orange-300": "#FDBA74", "orange-500": "#F97316",
	"orange-600": "#EA580C", "orange-700": "#C2410C", "orange-900": "#7C2D12",

	"amber-100": "#FEF3C7", "amber-300": "#FCD34D", "amber-500": "#F59E0B",
	"amber-600": "#D97706", "amber-700": "#B45309", "amber-900": "#78350F",

	"green-100": "#DCFCE7", "green-300": "#86EFAC", "green-500": "#22C55E",
	"green-600": "#16A34A", "green-700": "#15803D", "green-900": "#14532D",

	"emerald-100": "#D1FAE5", "emerald-300": "#6EE7B7", "emerald-500": "#10B981",
	"emerald-600": "#059669", "emerald-700": "#047857", "emerald-900": "#064E3B",

	"teal-100": "#CCFBF1", "teal-300": "#5EEAD4", "teal-500": "#14B8A6",
	"teal-600": "#0D9488", "teal-700": "#0F766E", "teal-900": "#134E4A",

	"sky-100": "#E0F2FE", "sky-300": "#7DD3FC", "sky-500": "#0EA5E9",
	"sky-600": "#0284C7", "sky-700": "#0369A1", "sky-900": "#0C4A6E",

	"blue-100": "#DBEAFE", "blue-300": "#93C5FD", "blue-500": "#3B82F6",
	"blue-600": "#2563EB", "blue-700": "#1D4ED8", "blue-900": "#1E3A8A",

	"indigo-100": "#E0E7FF", "indigo-300": "#A5B4FC", "indigo-500": "#6366F1",
	"indigo-600": "#4F46E5", "indigo-700": "#4338CA", "indigo-900": "#312E81",

	"purple-100": "#F3E8FF", "purple-300": "#D8B4FE", "purple-500": "#A855F7",
	"purple-600": "#9333EA", "purple-700": "#7E22CE", "purple-900": "#581C87",

	"pink-100": "#FCE7F3", "pink-300": "#F9A8D4", "pink-500": "#EC4899",
	"pink-600": "#DB2777", "pink-700": "#BE185D", "pink-900": "#831843",

	"rose-100": "#FFE4E6", "rose-300": "#FDA4AF", "rose-500": "#F43F5E",
	"rose-600": "#E11D48", "rose-700": "#BE123C", "rose-900": "#881337",
}

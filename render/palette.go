package render

// defaultPalette holds the stock per-day colors (CSS color hex codes).
var defaultPalette = []string{
	"#F0F8FF", // aliceblue
	"#FAEBD7", // antiquewhite
	"#00FFFF", // aqua
	"#7FFFD4", // aquamarine
	"#F0FFFF", // azure
	"#F5F5DC", // beige
	"#FFE4C4", // bisque
	"#FFEBCD", // blanchedalmond
	"#0000FF", // blue
	"#8A2BE2", // blueviolet
	"#A52A2A", // brown
	"#DEB887", // burlywood
	"#5F9EA0", // cadetblue
	"#7FFF00", // chartreuse
	"#D2691E", // chocolate
	"#FF7F50", // coral
	"#6495ED", // cornflowerblue
	"#FFF8DC", // cornsilk
	"#DC143C", // crimson
	"#00FFFF", // cyan
	"#00008B", // darkblue
	"#008B8B", // darkcyan
	"#B8860B", // darkgoldenrod
	"#A9A9A9", // darkgray
	"#BDB76B", // darkkhaki
	"#8B008B", // darkmagenta
	"#556B2F", // darkolivegreen
	"#FF8C00", // darkorange
	"#9932CC", // darkorchid
	"#8B0000", // darkred
	"#E9967A", // darksalmon
	"#8FBC8F", // darkseagreen
	"#483D8B", // darkslateblue
	"#2F4F4F", // darkslategray
	"#00CED1", // darkturquoise
	"#9400D3", // darkviolet
	"#FF1493", // deeppink
	"#00BFFF", // deepskyblue
	"#696969", // dimgray
	"#1E90FF", // dodgerblue
	"#B22222", // firebrick
	"#FFFAF0", // floralwhite
	"#228B22", // forestgreen
	"#FF00FF", // fuchsia
	"#DCDCDC", // gainsboro
	"#F8F8FF", // ghostwhite
	"#FFD700", // gold
	"#DAA520", // goldenrod
	"#D3D3D3", // lightgray
	"#90EE90", // lightgreen
	"#ADFF2F", // greenyellow
}

// DefaultPalette returns a copy of the stock per-day color palette.
func DefaultPalette() []string {
	out := make([]string, len(defaultPalette))
	copy(out, defaultPalette)
	return out
}

package levelog

// ansiReset terminates every styled segment. Closing tags always emit a full
// reset rather than restoring the enclosing style.
const ansiReset = "\x1b[0m"

// styleCodes maps markup tokens to VT100 escape sequences. Lowercase tokens
// select foreground colors, uppercase tokens the matching background colors,
// and the light- prefix selects the bright variants.
var styleCodes = map[string]string{
	// weight and decoration
	"bold":      "\x1b[1m",
	"dim":       "\x1b[2m",
	"italic":    "\x1b[3m",
	"underline": "\x1b[4m",
	"blink":     "\x1b[5m",
	"reverse":   "\x1b[7m",
	"hidden":    "\x1b[8m",
	"strike":    "\x1b[9m",

	// foreground
	"black":   "\x1b[30m",
	"red":     "\x1b[31m",
	"green":   "\x1b[32m",
	"yellow":  "\x1b[33m",
	"blue":    "\x1b[34m",
	"magenta": "\x1b[35m",
	"cyan":    "\x1b[36m",
	"white":   "\x1b[37m",

	"light-black":   "\x1b[90m",
	"light-red":     "\x1b[91m",
	"light-green":   "\x1b[92m",
	"light-yellow":  "\x1b[93m",
	"light-blue":    "\x1b[94m",
	"light-magenta": "\x1b[95m",
	"light-cyan":    "\x1b[96m",
	"light-white":   "\x1b[97m",

	// background
	"BLACK":   "\x1b[40m",
	"RED":     "\x1b[41m",
	"GREEN":   "\x1b[42m",
	"YELLOW":  "\x1b[43m",
	"BLUE":    "\x1b[44m",
	"MAGENTA": "\x1b[45m",
	"CYAN":    "\x1b[46m",
	"WHITE":   "\x1b[47m",

	"LIGHT-BLACK":   "\x1b[100m",
	"LIGHT-RED":     "\x1b[101m",
	"LIGHT-GREEN":   "\x1b[102m",
	"LIGHT-YELLOW":  "\x1b[103m",
	"LIGHT-BLUE":    "\x1b[104m",
	"LIGHT-MAGENTA": "\x1b[105m",
	"LIGHT-CYAN":    "\x1b[106m",
	"LIGHT-WHITE":   "\x1b[107m",
}

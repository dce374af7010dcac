package render

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the startup banner with the running version.
func PrintBanner(version string) {
	p := termenv.ColorProfile()
	// Saffron-to-rose gradient
	s1 := termenv.String(`  _ __ _   _ _ __   __ ___   ____ _| (_)`).Foreground(p.Color("#fbbf24"))
	s2 := termenv.String(` | '__| | | | '_ \ / _` + "`" + ` \ \ / / _` + "`" + ` | | |`).Foreground(p.Color("#f59e0b"))
	s3 := termenv.String(` | |  | |_| | |_) | (_| |\ V / (_| | | |`).Foreground(p.Color("#f97316"))
	s4 := termenv.String(` |_|   \__,_| .__/ \__,_| \_/ \__,_|_|_|`).Foreground(p.Color("#fb7185"))
	s5 := termenv.String(`            |_|`).Foreground(p.Color("#f472b6"))
	tag := termenv.String(fmt.Sprintf("  Sanskrit word-form generator  %s", version)).Foreground(p.Color("#9ca3af"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
	fmt.Println(tag)
	fmt.Println()
}

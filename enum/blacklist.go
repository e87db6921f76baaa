package enum

import (
	"github.com/zerkel-lang/zerkel/lang"
	"github.com/zerkel-lang/zerkel/term"
)

// blacklistSource lists surface forms known to reduce to a strictly smaller
// term, most of them discovered by hand while cataloguing the enumerator's
// output. Kept as the surface syntax, parsed once at init time, so the list
// reads the same way the programs it excludes do.
var blacklistSource = []string{
	"R>I",        // Equal to <E
	"RR?",        // Equal to <<E
	"RoR++",      // Equal to Ro+++
	"o+R+I",      // Equal to R+
	"o++<I",      // Equal to +
	"R!<I+",      // Equal R+
	"R!>I+",      // Equal R+
	"R!+<R+",     // Equal R+
	"R!+>R+",     // Equal R>R+
	"R!<I>I",     // Equal I
	"R!<R++",     // Equal R+
	"R!>R++",     // Equal R+
	"R!<<E+",     // Equal R+
	"R!>I<<E",    // Equal <E
	"R!<<E>I",    // Equal <E
	"R>R!+<I",    // Equal <E WHY ?
	"R>R!+>I",    // Equal <E WHY ?
	"RR!>+<+",    // Equal R+ WHY ?
	"R>R>R+",     // Equal to R>R+
	"R>o+II",     // Equal to R>R+
	"o+R+<E",     // Equal to R+
	"o+R+R+",     // Equal to oR+R+
	"RRo+??",     // Equal to >R>R+
	"RRoR+?",     // Equal to >R>R+
	"o+>I<I",     // Equal to +
	"R>o+I<E",    // Equal <o+EE
	"R>o+<EI",    // Equal o+<EI
	"R>Ro+++",    // Equal R>oR+R+
	"Ro++<<E",    // Equal R+
	"o+o+III",    // Equal o+II
	"RoR>R++",    // Equal to oR+R>R+
	"oR?II<E",    // Equal I
	"oR?IIR+",    // Equal >E
	"oR?IR+I",    // Equal I
	"oR>R+R+",    // Equal to oR+R>R+
	"o+o++++",    // Equal o+++
	"oR?++>I",    // Equal <<o+EE
	"oR?+<I+",    // Equal <<E
	"oo+I<E+",    // Equal o++<<E
	"oo+IR++",    // Equal o++oR++
	"oo+<EI+",    // Equal o+<<E+
	"RoR>R+?",    // Equal >>R>R+
	"oo+IIR?",    // Equal o+R?R?
}

var blacklist = buildBlacklist()

func buildBlacklist() map[*term.Node]struct{} {
	b := make(map[*term.Node]struct{}, len(blacklistSource))
	for _, text := range blacklistSource {
		node, err := lang.Parse(text)
		if err != nil {
			tracer().Errorf("parsing blacklist entry %q: %v", text, err)
			panic(err)
		}
		b[node] = struct{}{}
	}
	return b
}

func isBlacklisted(p *term.Node) bool {
	_, ok := blacklist[p]
	return ok
}

package segment

// abbreviations lists lowercase tokens (trailing period included) that must
// not terminate a sentence when followed by a period. Only the fallback
// scanner consults this set; it is never mutated at runtime.
var abbreviations = map[string]struct{}{
	"dr.":     {},
	"mr.":     {},
	"mrs.":    {},
	"ms.":     {},
	"prof.":   {},
	"sr.":     {},
	"jr.":     {},
	"st.":     {},
	"vs.":     {},
	"etc.":    {},
	"e.g.":    {},
	"i.e.":    {},
	"cf.":     {},
	"al.":     {},
	"inc.":    {},
	"ltd.":    {},
	"co.":     {},
	"corp.":   {},
	"no.":     {},
	"vol.":    {},
	"pp.":     {},
	"dept.":   {},
	"univ.":   {},
	"approx.": {},
	"jan.":    {},
	"feb.":    {},
	"mar.":    {},
	"apr.":    {},
	"jun.":    {},
	"jul.":    {},
	"aug.":    {},
	"sep.":    {},
	"sept.":   {},
	"oct.":    {},
	"nov.":    {},
	"dec.":    {},
	"mon.":    {},
	"tue.":    {},
	"wed.":    {},
	"thu.":    {},
	"fri.":    {},
	"sat.":    {},
	"sun.":    {},
}

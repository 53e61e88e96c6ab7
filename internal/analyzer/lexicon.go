package analyzer

// valences is an AFINN-style polarity lexicon: word -> integer valence
// in [-5, 5]. The subset below covers the vocabulary that shows up in
// product feedback, support tickets and casual chat, which is what this
// service mostly sees.
var valences = map[string]int{
	// positive
	"love":        3,
	"loved":       3,
	"loves":       3,
	"like":        2,
	"liked":       2,
	"likes":       2,
	"adore":       3,
	"amazing":     4,
	"awesome":     4,
	"excellent":   3,
	"fantastic":   4,
	"wonderful":   4,
	"great":       3,
	"good":        3,
	"best":        3,
	"better":      2,
	"nice":        3,
	"happy":       3,
	"glad":        3,
	"delighted":   3,
	"delightful":  3,
	"pleased":     3,
	"pleasant":    3,
	"enjoy":       2,
	"enjoyed":     2,
	"enjoying":    2,
	"fun":         4,
	"beautiful":   3,
	"brilliant":   4,
	"superb":      5,
	"perfect":     3,
	"impressive":  3,
	"impressed":   3,
	"helpful":     2,
	"helps":       2,
	"useful":      2,
	"handy":       2,
	"smooth":      2,
	"fast":        1,
	"reliable":    2,
	"solid":       2,
	"stable":      2,
	"easy":        1,
	"intuitive":   2,
	"clean":       2,
	"clear":       1,
	"win":         4,
	"winner":      4,
	"winning":     4,
	"works":       1,
	"worked":      1,
	"thanks":      2,
	"thank":       2,
	"grateful":    3,
	"appreciate":  2,
	"appreciated": 2,
	"recommend":   2,
	"recommended": 2,
	"outstanding": 5,
	"superior":    2,
	"favorite":    2,
	"favourite":   2,
	"cool":        1,
	"yay":         3,
	"wow":         4,
	"satisfied":   2,
	"satisfying":  2,
	"success":     2,
	"successful":  3,
	"improved":    2,
	"improvement": 2,
	"fresh":       1,
	"rich":        2,
	"strong":      2,
	"super":       3,
	"sweet":       2,
	"top":         2,
	"trust":       1,
	"trusted":     2,
	"welcome":     2,
	"worth":       2,
	"worthy":      2,

	// negative
	"hate":          -3,
	"hated":         -3,
	"hates":         -3,
	"dislike":       -2,
	"disliked":      -2,
	"awful":         -3,
	"terrible":      -3,
	"horrible":      -3,
	"bad":           -3,
	"worse":         -3,
	"worst":         -3,
	"poor":          -2,
	"disappointing": -2,
	"disappointed":  -2,
	"disappoints":   -2,
	"annoying":      -2,
	"annoyed":       -2,
	"frustrating":   -2,
	"frustrated":    -2,
	"useless":       -2,
	"broken":        -1,
	"breaks":        -1,
	"bug":           -2,
	"bugs":          -2,
	"buggy":         -3,
	"crash":         -2,
	"crashes":       -2,
	"crashed":       -2,
	"fail":          -2,
	"fails":         -2,
	"failed":        -2,
	"failure":       -2,
	"slow":          -2,
	"laggy":         -2,
	"lag":           -1,
	"confusing":     -2,
	"confused":      -2,
	"unclear":       -1,
	"ugly":          -3,
	"mess":          -2,
	"messy":         -2,
	"sad":           -2,
	"angry":         -3,
	"mad":           -3,
	"upset":         -2,
	"unhappy":       -2,
	"sorry":         -1,
	"problem":       -2,
	"problems":      -2,
	"issue":         -2,
	"issues":        -2,
	"error":         -2,
	"errors":        -2,
	"wrong":         -2,
	"waste":         -1,
	"wasted":        -2,
	"stupid":        -2,
	"dumb":          -3,
	"boring":        -3,
	"bland":         -1,
	"cheap":         -1,
	"scam":          -2,
	"spam":          -2,
	"lost":          -3,
	"lose":          -3,
	"losing":        -3,
	"unreliable":    -2,
	"unstable":      -2,
	"unusable":      -3,
	"missing":       -2,
	"lacking":       -1,
	"lacks":         -1,
	"hard":          -1,
	"difficult":     -1,
	"painful":       -2,
	"pain":          -2,
	"refund":        -2,
	"cancel":        -1,
	"cancelled":     -1,
	"complaint":     -2,
	"complain":      -2,
	"regret":        -2,
	"regrets":       -2,
	"nope":          -2,
	"unfortunately": -2,
}

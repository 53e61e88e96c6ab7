package analyzer

import (
	"strings"

	"textlens/internal/domain/analysis"
)

// Entities tags capitalized phrases as people, places or organizations.
// The three lists are disjoint: each phrase lands in exactly one bucket,
// decided by the first rule that matches. Phrases no rule recognizes are
// left out rather than guessed.
func Entities(text string) analysis.EntitiesResult {
	res := analysis.EntitiesResult{
		People:        []string{},
		Places:        []string{},
		Organizations: []string{},
	}

	ws := words(text)
	runs := capitalizedRuns(text)
	for _, run := range runs {
		if len(run) == 1 && isStopword(strings.ToLower(run[0])) {
			continue
		}
		phrase := strings.Join(run, " ")

		switch {
		case hasTitlePrefix(run):
			res.People = append(res.People, phrase)
		case hasOrgSuffix(run), isAcronym(phrase):
			res.Organizations = append(res.Organizations, phrase)
		case placeGazetteer[strings.ToLower(phrase)]:
			res.Places = append(res.Places, phrase)
		case firstNames[strings.ToLower(run[0])]:
			res.People = append(res.People, phrase)
		case hasPlaceCue(ws, run[0]):
			res.Places = append(res.Places, phrase)
		}
	}
	return res
}

var titles = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"professor": true, "president": true, "ceo": true, "captain": true,
	"sir": true, "madam": true,
}

func hasTitlePrefix(run []string) bool {
	if len(run) < 2 {
		return false
	}
	first := strings.ToLower(strings.TrimSuffix(run[0], "."))
	return titles[first]
}

var orgSuffixes = map[string]bool{
	"inc": true, "corp": true, "corporation": true, "ltd": true,
	"llc": true, "co": true, "company": true, "group": true,
	"labs": true, "technologies": true, "systems": true, "software": true,
	"bank": true, "university": true, "institute": true, "foundation": true,
	"association": true, "agency": true, "studios": true, "media": true,
}

func hasOrgSuffix(run []string) bool {
	if len(run) < 2 {
		return false
	}
	last := strings.ToLower(strings.TrimSuffix(run[len(run)-1], "."))
	return orgSuffixes[last]
}

// isAcronym matches all-caps tokens like NASA or IBM.
func isAcronym(phrase string) bool {
	if len(phrase) < 2 || strings.Contains(phrase, " ") {
		return false
	}
	for _, r := range phrase {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// hasPlaceCue reports whether the phrase's first word is preceded by a
// locational preposition in the source text.
func hasPlaceCue(ws []string, firstWord string) bool {
	cues := map[string]bool{"in": true, "at": true, "from": true, "near": true, "to": true}
	for i := 1; i < len(ws); i++ {
		if stripToken(ws[i]) == firstWord && cues[strings.ToLower(stripToken(ws[i-1]))] {
			return true
		}
	}
	return false
}

var placeGazetteer = map[string]bool{
	"london": true, "paris": true, "berlin": true, "madrid": true,
	"rome": true, "amsterdam": true, "vienna": true, "dublin": true,
	"new york": true, "new york city": true, "los angeles": true,
	"san francisco": true, "chicago": true, "boston": true,
	"seattle": true, "austin": true, "toronto": true, "vancouver": true,
	"tokyo": true, "osaka": true, "seoul": true, "beijing": true,
	"shanghai": true, "singapore": true, "sydney": true, "melbourne": true,
	"mumbai": true, "delhi": true, "bangalore": true, "jakarta": true,
	"dubai": true, "istanbul": true, "moscow": true, "cairo": true,
	"lagos": true, "nairobi": true, "mexico city": true, "sao paulo": true,
	"buenos aires": true, "lima": true, "bogota": true,
	"usa": true, "america": true, "united states": true,
	"england": true, "france": true, "germany": true, "spain": true,
	"italy": true, "netherlands": true, "ireland": true, "canada": true,
	"japan": true, "korea": true, "china": true, "india": true,
	"indonesia": true, "australia": true, "brazil": true, "argentina": true,
	"mexico": true, "egypt": true, "kenya": true, "nigeria": true,
	"russia": true, "turkey": true, "europe": true, "asia": true,
	"africa": true, "california": true, "texas": true, "florida": true,
}

var firstNames = map[string]bool{
	"james": true, "john": true, "robert": true, "michael": true,
	"william": true, "david": true, "richard": true, "joseph": true,
	"thomas": true, "charles": true, "daniel": true, "matthew": true,
	"anthony": true, "mark": true, "paul": true, "steven": true,
	"andrew": true, "kenneth": true, "george": true, "kevin": true,
	"brian": true, "edward": true, "peter": true, "henry": true,
	"mary": true, "patricia": true, "jennifer": true, "linda": true,
	"elizabeth": true, "barbara": true, "susan": true, "jessica": true,
	"sarah": true, "karen": true, "nancy": true, "lisa": true,
	"margaret": true, "sandra": true, "ashley": true, "emily": true,
	"anna": true, "emma": true, "olivia": true, "sophia": true,
	"laura": true, "alice": true, "grace": true, "maria": true,
	"carlos": true, "jose": true, "juan": true, "luis": true,
	"ahmed": true, "ali": true, "omar": true, "chen": true, "wei": true,
	"yuki": true, "hiro": true, "priya": true, "raj": true, "amir": true,
}

package taxonomy

import "strings"

// regionTable maps a listing-page region key to the labels that fall into
// it. Order matters: derivation returns the first region that matches.
type regionTable struct {
	Key    string
	Labels []string
}

// geographicRegions is matched by case-insensitive exact label.
var geographicRegions = []regionTable{
	{Key: "europe", Labels: []string{
		"Europe", "Northern Europe", "Southern Europe", "Eastern Europe",
		"Western Europe", "Central Europe", "Southeastern Europe",
	}},
	{Key: "africa", Labels: []string{
		"Africa", "North Africa", "West Africa", "East Africa",
		"Central Africa", "Southern Africa", "Horn of Africa",
	}},
	{Key: "asia", Labels: []string{
		"Asia", "East Asia", "Southeast Asia", "South Asia",
		"Central Asia", "North Asia",
	}},
	{Key: "middle-east", Labels: []string{
		"Middle East", "Anatolia", "Levant", "Arabian Peninsula",
		"Mesopotamia", "Persian Plateau", "Caucasus",
	}},
	{Key: "americas", Labels: []string{
		"Americas", "North America", "Central America", "Caribbean",
		"Andes", "Amazonia", "Southern Cone",
	}},
	{Key: "oceania", Labels: []string{
		"Oceania", "Australia", "Melanesia", "Micronesia", "Polynesia",
	}},
}

// phenotypeRegions is matched by case-insensitive substring, so one stem
// covers a main group and all of its subgroups ("Mediterranid" covers
// "Gracile Mediterranid" and "Atlanto-Mediterranid").
var phenotypeRegions = []regionTable{
	{Key: "europe", Labels: []string{
		"Europid", "Nordid", "Anglo-Saxon", "Troender", "Mediterranid",
		"Pontid", "Alpinid", "Gorid", "Dinarid", "Norid", "Litorid",
		"Baltid", "Ladogan",
	}},
	{Key: "africa", Labels: []string{
		"Negrid", "Sudanid", "Nilotid", "Bantuid", "Aethiopid", "Pygmid",
		"Bambutid", "Khoisanid", "Khoid", "Sanid", "Berberid",
	}},
	// Americas precede Asia: "Amerindid" contains the stem "Indid" and
	// must not be captured by it.
	{Key: "americas", Labels: []string{
		"Amerindid", "Centralid", "Andid", "Amazonid", "Patagonid",
	}},
	{Key: "asia", Labels: []string{
		"Mongolid", "Sinid", "Huanghoid", "Chukiangid", "Tungid",
		"Sibirid", "Palaungid", "Shanid", "Tibetid", "Ainuid", "Eskimid",
		"Indid", "Brachid", "Melanid", "Veddid", "Negritid", "Andamanid",
		"Aetid",
	}},
	{Key: "middle-east", Labels: []string{
		"Armenoid", "Iranid", "Arabid",
	}},
	{Key: "oceania", Labels: []string{
		"Australoid", "Australid", "Melanesid",
	}},
}

// DeriveGeographicRegion maps a geographic classification value to its
// region key by exact label match.
func DeriveGeographicRegion(value string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(value))
	for _, region := range geographicRegions {
		for _, label := range region.Labels {
			if strings.ToLower(label) == needle {
				return region.Key, true
			}
		}
	}
	return "", false
}

// DerivePhenotypeRegion maps a phenotype classification value to its
// region key. Unlike the geographic variant this matches by substring;
// the two strategies are deliberately different and both load-bearing
// for which subjects appear in which region listing.
func DerivePhenotypeRegion(value string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(value))
	if needle == "" {
		return "", false
	}
	for _, region := range phenotypeRegions {
		for _, label := range region.Labels {
			if strings.Contains(needle, strings.ToLower(label)) {
				return region.Key, true
			}
		}
	}
	return "", false
}

// RegionKeys lists the region keys in declared order.
func RegionKeys() []string {
	keys := make([]string, 0, len(geographicRegions))
	for _, r := range geographicRegions {
		keys = append(keys, r.Key)
	}
	return keys
}

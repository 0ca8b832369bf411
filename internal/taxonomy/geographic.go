package taxonomy

// geographicTree is the region -> subregion grouping shared by the three
// geographic axes. Subregion labels are the selectable values; region
// labels are selectable too (a vote may stay coarse).
var geographicTree = []Group{
	{Label: "Europe", Children: []Group{
		{Label: "Northern Europe"},
		{Label: "Southern Europe"},
		{Label: "Eastern Europe"},
		{Label: "Western Europe"},
		{Label: "Central Europe"},
		{Label: "Southeastern Europe"},
	}},
	{Label: "Africa", Children: []Group{
		{Label: "North Africa"},
		{Label: "West Africa"},
		{Label: "East Africa"},
		{Label: "Central Africa"},
		{Label: "Southern Africa"},
		{Label: "Horn of Africa"},
	}},
	{Label: "Asia", Children: []Group{
		{Label: "East Asia"},
		{Label: "Southeast Asia"},
		{Label: "South Asia"},
		{Label: "Central Asia"},
		{Label: "North Asia"},
	}},
	{Label: "Middle East", Children: []Group{
		{Label: "Anatolia"},
		{Label: "Levant"},
		{Label: "Arabian Peninsula"},
		{Label: "Mesopotamia"},
		{Label: "Persian Plateau"},
		{Label: "Caucasus"},
	}},
	{Label: "Americas", Children: []Group{
		{Label: "North America"},
		{Label: "Central America"},
		{Label: "Caribbean"},
		{Label: "Andes"},
		{Label: "Amazonia"},
		{Label: "Southern Cone"},
	}},
	{Label: "Oceania", Children: []Group{
		{Label: "Australia"},
		{Label: "Melanesia"},
		{Label: "Micronesia"},
		{Label: "Polynesia"},
	}},
}

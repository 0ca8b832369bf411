package taxonomy

// phenotypeTree is the division -> main group -> subgroup grouping shared
// by the three phenotype axes. Every label at every depth is a selectable
// value of the axis.
var phenotypeTree = []Group{
	{Label: "Europid", Children: []Group{
		{Label: "Nordid", Children: []Group{
			{Label: "Hallstatt Nordid"},
			{Label: "Anglo-Saxon Type"},
			{Label: "Troender"},
		}},
		{Label: "Mediterranid", Children: []Group{
			{Label: "Gracile Mediterranid"},
			{Label: "Atlanto-Mediterranid"},
			{Label: "Pontid"},
		}},
		{Label: "Alpinid", Children: []Group{
			{Label: "Western Alpinid"},
			{Label: "Gorid"},
		}},
		{Label: "Dinarid", Children: []Group{
			{Label: "Norid"},
			{Label: "Litorid"},
		}},
		{Label: "East Europid", Children: []Group{
			{Label: "Baltid"},
			{Label: "Ladogan"},
		}},
		{Label: "Armenoid"},
		{Label: "Iranid"},
		{Label: "Arabid"},
		{Label: "Berberid"},
	}},
	{Label: "Mongolid", Children: []Group{
		{Label: "Sinid", Children: []Group{
			{Label: "North Sinid"},
			{Label: "Huanghoid"},
			{Label: "Chukiangid"},
		}},
		{Label: "Tungid"},
		{Label: "Sibirid"},
		{Label: "South Mongolid", Children: []Group{
			{Label: "Palaungid"},
			{Label: "Shanid"},
		}},
		{Label: "Tibetid"},
		{Label: "Ainuid"},
		{Label: "Eskimid"},
	}},
	{Label: "Negrid", Children: []Group{
		{Label: "Sudanid"},
		{Label: "Nilotid"},
		{Label: "Bantuid", Children: []Group{
			{Label: "Central Bantuid"},
			{Label: "South Bantuid"},
		}},
		{Label: "Aethiopid", Children: []Group{
			{Label: "East Aethiopid"},
			{Label: "Central Aethiopid"},
		}},
		{Label: "Pygmid", Children: []Group{
			{Label: "Bambutid"},
		}},
	}},
	{Label: "Khoisanid", Children: []Group{
		{Label: "Khoid"},
		{Label: "Sanid"},
	}},
	{Label: "Australoid", Children: []Group{
		{Label: "Australid"},
		{Label: "Melanesid"},
		{Label: "Negritid", Children: []Group{
			{Label: "Andamanid"},
			{Label: "Aetid"},
		}},
		{Label: "Veddid"},
	}},
	{Label: "Indid", Children: []Group{
		{Label: "Gracile Indid"},
		{Label: "North Indid"},
		{Label: "Indo Brachid"},
		{Label: "Melanid"},
	}},
	{Label: "Amerindid", Children: []Group{
		{Label: "North Amerindid"},
		{Label: "Centralid"},
		{Label: "Andid"},
		{Label: "Amazonid"},
		{Label: "Patagonid"},
	}},
}

var (
	hairColors = []string{
		"Black", "Dark Brown", "Brown", "Light Brown",
		"Red", "Dark Blond", "Blond", "Light Blond",
	}
	hairTextures = []string{"Straight", "Wavy", "Curly", "Coily"}
	eyeColors    = []string{
		"Dark Brown", "Brown", "Hazel", "Amber", "Green", "Gray", "Blue",
	}
	skinTones = []string{
		"Very Fair", "Fair", "Olive", "Light Brown",
		"Medium Brown", "Dark Brown", "Very Dark",
	}
	heights = []string{"Very Short", "Short", "Average", "Tall", "Very Tall"}
	builds  = []string{"Slim", "Athletic", "Average", "Stocky", "Heavy"}
)

package states

// Counties holds the canonical ordered county list per state, bare names
// without the jurisdiction suffix. Only states with a configured scrape
// target need a list here; the parser skips states without one.
var Counties = map[string][]string{
	"OH": {
		"Adams", "Allen", "Ashland", "Ashtabula", "Athens", "Auglaize", "Belmont",
		"Brown", "Butler", "Carroll", "Champaign", "Clark", "Clermont", "Clinton",
		"Columbiana", "Coshocton", "Crawford", "Cuyahoga", "Darke", "Defiance",
		"Delaware", "Erie", "Fairfield", "Fayette", "Franklin", "Fulton", "Gallia",
		"Geauga", "Greene", "Guernsey", "Hamilton", "Hancock", "Hardin", "Harrison",
		"Henry", "Highland", "Hocking", "Holmes", "Huron", "Jackson", "Jefferson",
		"Knox", "Lake", "Lawrence", "Licking", "Logan", "Lorain", "Lucas",
		"Madison", "Mahoning", "Marion", "Medina", "Meigs", "Mercer", "Miami",
		"Monroe", "Montgomery", "Morgan", "Morrow", "Muskingum", "Noble", "Ottawa",
		"Paulding", "Perry", "Pickaway", "Pike", "Portage", "Preble", "Putnam",
		"Richland", "Ross", "Sandusky", "Scioto", "Seneca", "Shelby", "Stark",
		"Summit", "Trumbull", "Tuscarawas", "Union", "Van Wert", "Vinton",
		"Warren", "Washington", "Wayne", "Williams", "Wood", "Wyandot",
	},
	"PA": {
		"Adams", "Allegheny", "Armstrong", "Beaver", "Bedford", "Berks", "Blair",
		"Bradford", "Bucks", "Butler", "Cambria", "Cameron", "Carbon", "Centre",
		"Chester", "Clarion", "Clearfield", "Clinton", "Columbia", "Crawford",
		"Cumberland", "Dauphin", "Delaware", "Elk", "Erie", "Fayette", "Forest",
		"Franklin", "Fulton", "Greene", "Huntingdon", "Indiana", "Jefferson",
		"Juniata", "Lackawanna", "Lancaster", "Lawrence", "Lebanon", "Lehigh",
		"Luzerne", "Lycoming", "McKean", "Mercer", "Mifflin", "Monroe",
		"Montgomery", "Montour", "Northampton", "Northumberland", "Perry",
		"Philadelphia", "Pike", "Potter", "Schuylkill", "Snyder", "Somerset",
		"Sullivan", "Susquehanna", "Tioga", "Union", "Venango", "Warren",
		"Washington", "Wayne", "Westmoreland", "Wyoming", "York",
	},
	"AZ": {
		"Apache", "Cochise", "Coconino", "Gila", "Graham", "Greenlee", "La Paz",
		"Maricopa", "Mohave", "Navajo", "Pima", "Pinal", "Santa Cruz", "Yavapai",
		"Yuma",
	},
	"IA": {
		"Adair", "Adams", "Allamakee", "Appanoose", "Audubon", "Benton",
		"Black Hawk", "Boone", "Bremer", "Buchanan", "Buena Vista", "Butler",
		"Calhoun", "Carroll", "Cass", "Cedar", "Cerro Gordo", "Cherokee",
		"Chickasaw", "Clarke", "Clay", "Clayton", "Clinton", "Crawford", "Dallas",
		"Davis", "Decatur", "Delaware", "Des Moines", "Dickinson", "Dubuque",
		"Emmet", "Fayette", "Floyd", "Franklin", "Fremont", "Greene", "Grundy",
		"Guthrie", "Hamilton", "Hancock", "Hardin", "Harrison", "Henry", "Howard",
		"Humboldt", "Ida", "Iowa", "Jackson", "Jasper", "Jefferson", "Johnson",
		"Jones", "Keokuk", "Kossuth", "Lee", "Linn", "Louisa", "Lucas", "Lyon",
		"Madison", "Mahaska", "Marion", "Marshall", "Mills", "Mitchell", "Monona",
		"Monroe", "Montgomery", "Muscatine", "O'Brien", "Osceola", "Page",
		"Palo Alto", "Plymouth", "Pocahontas", "Polk", "Pottawattamie",
		"Poweshiek", "Ringgold", "Sac", "Scott", "Shelby", "Sioux", "Story",
		"Tama", "Taylor", "Union", "Van Buren", "Wapello", "Warren", "Washington",
		"Wayne", "Webster", "Winnebago", "Winneshiek", "Woodbury", "Worth",
		"Wright",
	},
}

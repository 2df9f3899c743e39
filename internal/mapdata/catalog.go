package mapdata

import "fft-map-extractor/internal/vfs"

// MapInfo is one map catalog entry. Usable is false for the placeholder
// entries whose GNS file is a 208-byte stub with no resources.
type MapInfo struct {
	ID     int
	File   vfs.FileID
	Usable bool
	Name   string
}

// catalog lists every map id present on the disc. Ids 120-124 have no
// GNS file at all and are absent. Names follow the common community
// translation; the ids 105-114 are the engine's internal test arenas.
var catalog = []MapInfo{
	{0, vfs.MapGNS000, false, "Unknown"},
	{1, vfs.MapGNS001, true, "At Main Gate of Igros Castle"},
	{2, vfs.MapGNS002, true, "Back Gate of Lesalia Castle"},
	{3, vfs.MapGNS003, true, "Hall of St. Murond Temple"},
	{4, vfs.MapGNS004, true, "Office of Lesalia Castle"},
	{5, vfs.MapGNS005, true, "Roof of Riovanes Castle"},
	{6, vfs.MapGNS006, true, "At the Gate of Riovanes Castle"},
	{7, vfs.MapGNS007, true, "Inside of Riovanes Castle"},
	{8, vfs.MapGNS008, true, "Riovanes Castle"},
	{9, vfs.MapGNS009, true, "Citadel of Igros Castle"},
	{10, vfs.MapGNS010, true, "Inside of Igros Castle"},
	{11, vfs.MapGNS011, true, "Office of Igros Castle"},
	{12, vfs.MapGNS012, true, "At the Gate of Lionel Castle"},
	{13, vfs.MapGNS013, true, "Inside of Lionel Castle"},
	{14, vfs.MapGNS014, true, "Office of Lionel Castle"},
	{15, vfs.MapGNS015, true, "At the Gate of Limberry Castle (1)"},
	{16, vfs.MapGNS016, true, "Inside of Limberry Castle"},
	{17, vfs.MapGNS017, true, "Underground Cemetery of Limberry Castle"},
	{18, vfs.MapGNS018, true, "Office of Limberry Castle"},
	{19, vfs.MapGNS019, true, "At the Gate of Limberry Castle (2)"},
	{20, vfs.MapGNS020, true, "Inside of Zeltennia Castle"},
	{21, vfs.MapGNS021, true, "Zeltennia Castle"},
	{22, vfs.MapGNS022, true, "Magic City Gariland"},
	{23, vfs.MapGNS023, true, "Belouve Residence"},
	{24, vfs.MapGNS024, true, "Military Academy's Auditorium"},
	{25, vfs.MapGNS025, true, "Yardow Fort City"},
	{26, vfs.MapGNS026, true, "Weapon Storage of Yardow"},
	{27, vfs.MapGNS027, true, "Goland Coal City"},
	{28, vfs.MapGNS028, true, "Colliery Underground First Floor"},
	{29, vfs.MapGNS029, true, "Colliery Underground Second Floor"},
	{30, vfs.MapGNS030, true, "Colliery Underground Third Floor"},
	{31, vfs.MapGNS031, true, "Dorter Trade City"},
	{32, vfs.MapGNS032, true, "Slums in Dorter"},
	{33, vfs.MapGNS033, true, "Hospital in Slums"},
	{34, vfs.MapGNS034, true, "Cellar of Sand Mouse"},
	{35, vfs.MapGNS035, true, "Zaland Fort City"},
	{36, vfs.MapGNS036, true, "Church Outside of Town"},
	{37, vfs.MapGNS037, true, "Ruins Outside Zaland"},
	{38, vfs.MapGNS038, true, "Goug Machine City"},
	{39, vfs.MapGNS039, true, "Underground Passage in Goland"},
	{40, vfs.MapGNS040, true, "Slums in Goug"},
	{41, vfs.MapGNS041, true, "Besrodio's House"},
	{42, vfs.MapGNS042, true, "Warjilis Trade City"},
	{43, vfs.MapGNS043, true, "Port of Warjilis"},
	{44, vfs.MapGNS044, true, "Bervenia Free City"},
	{45, vfs.MapGNS045, true, "Ruins of Zeltennia Castle's Church"},
	{46, vfs.MapGNS046, true, "Cemetery of Heavenly Knight, Balbanes"},
	{47, vfs.MapGNS047, true, "Zarghidas Trade City"},
	{48, vfs.MapGNS048, true, "Slums of Zarghidas"},
	{49, vfs.MapGNS049, true, "Fort Zeakden"},
	{50, vfs.MapGNS050, true, "St. Murond Temple"},
	{51, vfs.MapGNS051, true, "St. Murond Temple"},
	{52, vfs.MapGNS052, true, "Chapel of St. Murond Temple"},
	{53, vfs.MapGNS053, true, "Entrance to Death City"},
	{54, vfs.MapGNS054, true, "Lost Sacred Precincts"},
	{55, vfs.MapGNS055, true, "Graveyard of Airships"},
	{56, vfs.MapGNS056, true, "Orbonne Monastery"},
	{57, vfs.MapGNS057, true, "Underground Book Storage First Floor"},
	{58, vfs.MapGNS058, true, "Underground Book Storage Second Floor"},
	{59, vfs.MapGNS059, true, "Underground Book Storage Third Floor"},
	{60, vfs.MapGNS060, true, "Underground Book Storage Fourth Floor"},
	{61, vfs.MapGNS061, true, "Underground Book Storage Fifth Floor"},
	{62, vfs.MapGNS062, true, "Chapel of Orbonne Monastery"},
	{63, vfs.MapGNS063, true, "Golgorand Execution Site"},
	{64, vfs.MapGNS064, true, "In Front of Bethla Garrison's Sluice"},
	{65, vfs.MapGNS065, true, "Granary of Bethla Garrison"},
	{66, vfs.MapGNS066, true, "South Wall of Bethla Garrison"},
	{67, vfs.MapGNS067, true, "North Wall of Bethla Garrison"},
	{68, vfs.MapGNS068, true, "Bethla Garrison"},
	{69, vfs.MapGNS069, true, "Murond Death City"},
	{70, vfs.MapGNS070, true, "Nelveska Temple"},
	{71, vfs.MapGNS071, true, "Dolbodar Swamp"},
	{72, vfs.MapGNS072, true, "Fovoham Plains"},
	{73, vfs.MapGNS073, true, "Inside of Windmill Shed"},
	{74, vfs.MapGNS074, true, "Sweegy Woods"},
	{75, vfs.MapGNS075, true, "Bervenia Volcano"},
	{76, vfs.MapGNS076, true, "Zeklaus Desert"},
	{77, vfs.MapGNS077, true, "Lenalia Plateau"},
	{78, vfs.MapGNS078, true, "Zigolis Swamp"},
	{79, vfs.MapGNS079, true, "Yuguo Woods"},
	{80, vfs.MapGNS080, true, "Araguay Woods"},
	{81, vfs.MapGNS081, true, "Grog Hill"},
	{82, vfs.MapGNS082, true, "Bed Desert"},
	{83, vfs.MapGNS083, true, "Zirekile Falls"},
	{84, vfs.MapGNS084, true, "Bariaus Hill"},
	{85, vfs.MapGNS085, true, "Mandalia Plains"},
	{86, vfs.MapGNS086, true, "Doguola Pass"},
	{87, vfs.MapGNS087, true, "Bariaus Valley"},
	{88, vfs.MapGNS088, true, "Finath River"},
	{89, vfs.MapGNS089, true, "Poeskas Lake"},
	{90, vfs.MapGNS090, true, "Germinas Peak"},
	{91, vfs.MapGNS091, true, "Thieves Fort"},
	{92, vfs.MapGNS092, true, "Igros-Belouve Residence"},
	{93, vfs.MapGNS093, true, "Broke Down Shed-Wooden Building"},
	{94, vfs.MapGNS094, true, "Broke Down Shed-Stone Building"},
	{95, vfs.MapGNS095, true, "Church"},
	{96, vfs.MapGNS096, true, "Pub"},
	{97, vfs.MapGNS097, true, "Inside Castle Gate in Lesalia"},
	{98, vfs.MapGNS098, true, "Outside Castle Gate in Lesalia"},
	{99, vfs.MapGNS099, true, "Main Street of Lesalia"},
	{100, vfs.MapGNS100, true, "Public Cemetery"},
	{101, vfs.MapGNS101, true, "Tutorial (1)"},
	{102, vfs.MapGNS102, true, "Tutorial (2)"},
	{103, vfs.MapGNS103, true, "Windmill Shed"},
	{104, vfs.MapGNS104, true, "Belouve Residence"},
	{105, vfs.MapGNS105, true, "TERMINATE"},
	{106, vfs.MapGNS106, true, "DELTA"},
	{107, vfs.MapGNS107, true, "NOGIAS"},
	{108, vfs.MapGNS108, true, "VOYAGE"},
	{109, vfs.MapGNS109, true, "BRIDGE"},
	{110, vfs.MapGNS110, true, "VALKYRIES"},
	{111, vfs.MapGNS111, true, "MLAPAN"},
	{112, vfs.MapGNS112, true, "TIGER"},
	{113, vfs.MapGNS113, true, "HORROR"},
	{114, vfs.MapGNS114, true, "END"},
	{115, vfs.MapGNS115, true, "Banished Fort"},
	{116, vfs.MapGNS116, false, "Unknown"},
	{117, vfs.MapGNS117, false, "Unknown"},
	{118, vfs.MapGNS118, false, "Unknown"},
	{119, vfs.MapGNS119, false, "Unknown"},
	{125, vfs.MapGNS125, false, "Unknown"},
}

// Info returns the catalog entry for the given map id.
func Info(id int) (MapInfo, bool) {
	for _, m := range catalog {
		if m.ID == id {
			return m, true
		}
	}
	return MapInfo{}, false
}

// All returns the catalog in id order. The returned slice is a copy.
func All() []MapInfo {
	out := make([]MapInfo, len(catalog))
	copy(out, catalog)
	return out
}

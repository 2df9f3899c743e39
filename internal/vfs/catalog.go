package vfs

// FileID names a file in the disc image. The catalog covers the subset
// of the disc this library reads: every per-map GNS directory file plus
// the image-bearing event and battle resources. Sector and length values
// come from the US release (SCUS-94221); no other image is supported.
type FileID int

const (
	FileNone FileID = iota

	EventBonusBin
	EventChapter1Bin
	EventChapter2Bin
	EventChapter3Bin
	EventChapter4Bin
	EventEvtchrBin
	EventEvtfaceBin
	EventFrameBin
	EventItemBin
	EventUnitBin
	EventWldfaceBin
	EventWldface4Bin
	BattleOtherSpr

	MapGNS000
	MapGNS001
	MapGNS002
	MapGNS003
	MapGNS004
	MapGNS005
	MapGNS006
	MapGNS007
	MapGNS008
	MapGNS009
	MapGNS010
	MapGNS011
	MapGNS012
	MapGNS013
	MapGNS014
	MapGNS015
	MapGNS016
	MapGNS017
	MapGNS018
	MapGNS019
	MapGNS020
	MapGNS021
	MapGNS022
	MapGNS023
	MapGNS024
	MapGNS025
	MapGNS026
	MapGNS027
	MapGNS028
	MapGNS029
	MapGNS030
	MapGNS031
	MapGNS032
	MapGNS033
	MapGNS034
	MapGNS035
	MapGNS036
	MapGNS037
	MapGNS038
	MapGNS039
	MapGNS040
	MapGNS041
	MapGNS042
	MapGNS043
	MapGNS044
	MapGNS045
	MapGNS046
	MapGNS047
	MapGNS048
	MapGNS049
	MapGNS050
	MapGNS051
	MapGNS052
	MapGNS053
	MapGNS054
	MapGNS055
	MapGNS056
	MapGNS057
	MapGNS058
	MapGNS059
	MapGNS060
	MapGNS061
	MapGNS062
	MapGNS063
	MapGNS064
	MapGNS065
	MapGNS066
	MapGNS067
	MapGNS068
	MapGNS069
	MapGNS070
	MapGNS071
	MapGNS072
	MapGNS073
	MapGNS074
	MapGNS075
	MapGNS076
	MapGNS077
	MapGNS078
	MapGNS079
	MapGNS080
	MapGNS081
	MapGNS082
	MapGNS083
	MapGNS084
	MapGNS085
	MapGNS086
	MapGNS087
	MapGNS088
	MapGNS089
	MapGNS090
	MapGNS091
	MapGNS092
	MapGNS093
	MapGNS094
	MapGNS095
	MapGNS096
	MapGNS097
	MapGNS098
	MapGNS099
	MapGNS100
	MapGNS101
	MapGNS102
	MapGNS103
	MapGNS104
	MapGNS105
	MapGNS106
	MapGNS107
	MapGNS108
	MapGNS109
	MapGNS110
	MapGNS111
	MapGNS112
	MapGNS113
	MapGNS114
	MapGNS115
	MapGNS116
	MapGNS117
	MapGNS118
	MapGNS119
	MapGNS125

	fileCount
)

// FileDesc locates one file on the disc.
type FileDesc struct {
	Sector uint32
	Length uint32
	Name   string
}

var catalog = map[FileID]FileDesc{
	EventBonusBin:    {5824, 958464, "EVENT/BONUS.BIN"},
	EventChapter1Bin: {5776, 8192, "EVENT/CHAPTER1.BIN"},
	EventChapter2Bin: {5780, 8192, "EVENT/CHAPTER2.BIN"},
	EventChapter3Bin: {5784, 8192, "EVENT/CHAPTER3.BIN"},
	EventChapter4Bin: {5788, 8192, "EVENT/CHAPTER4.BIN"},
	EventEvtchrBin:   {7500, 4208640, "EVENT/EVTCHR.BIN"},
	EventEvtfaceBin:  {5707, 65536, "EVENT/EVTFACE.BIN"},
	EventFrameBin:    {3688, 37568, "EVENT/FRAME.BIN"},
	EventItemBin:     {6297, 33280, "EVENT/ITEM.BIN"},
	EventUnitBin:     {5739, 65536, "EVENT/UNIT.BIN"},
	EventWldfaceBin:  {6330, 131072, "EVENT/WLDFACE.BIN"},
	EventWldface4Bin: {6314, 32768, "EVENT/WLDFACE4.BIN"},
	BattleOtherSpr:   {57124, 33792, "BATTLE/OTHER.SPR"},

	MapGNS000: {10026, 208, "MAP/MAP000.GNS"},
	MapGNS001: {11304, 2388, "MAP/MAP001.GNS"},
	MapGNS002: {12656, 2288, "MAP/MAP002.GNS"},
	MapGNS003: {12938, 568, "MAP/MAP003.GNS"},
	MapGNS004: {13570, 1368, "MAP/MAP004.GNS"},
	MapGNS005: {14239, 1068, "MAP/MAP005.GNS"},
	MapGNS006: {14751, 1468, "MAP/MAP006.GNS"},
	MapGNS007: {15030, 628, "MAP/MAP007.GNS"},
	MapGNS008: {15595, 1028, "MAP/MAP008.GNS"},
	MapGNS009: {16262, 1468, "MAP/MAP009.GNS"},
	MapGNS010: {16347, 248, "MAP/MAP010.GNS"},
	MapGNS011: {16852, 1548, "MAP/MAP011.GNS"},
	MapGNS012: {17343, 1288, "MAP/MAP012.GNS"},
	MapGNS013: {17627, 568, "MAP/MAP013.GNS"},
	MapGNS014: {18175, 1268, "MAP/MAP014.GNS"},
	MapGNS015: {19510, 1928, "MAP/MAP015.GNS"},
	MapGNS016: {20075, 1128, "MAP/MAP016.GNS"},
	MapGNS017: {20162, 592, "MAP/MAP017.GNS"},
	MapGNS018: {20745, 1248, "MAP/MAP018.GNS"},
	MapGNS019: {21411, 1148, "MAP/MAP019.GNS"},
	MapGNS020: {21692, 548, "MAP/MAP020.GNS"},
	MapGNS021: {22270, 1368, "MAP/MAP021.GNS"},
	MapGNS022: {22938, 1368, "MAP/MAP022.GNS"},
	MapGNS023: {23282, 708, "MAP/MAP023.GNS"},
	MapGNS024: {23557, 528, "MAP/MAP024.GNS"},
	MapGNS025: {23899, 708, "MAP/MAP025.GNS"},
	MapGNS026: {23988, 248, "MAP/MAP026.GNS"},
	MapGNS027: {24266, 628, "MAP/MAP027.GNS"},
	MapGNS028: {24544, 528, "MAP/MAP028.GNS"},
	MapGNS029: {24822, 628, "MAP/MAP029.GNS"},
	MapGNS030: {25099, 588, "MAP/MAP030.GNS"},
	MapGNS031: {25764, 1148, "MAP/MAP031.GNS"},
	MapGNS032: {26042, 648, "MAP/MAP032.GNS"},
	MapGNS033: {26229, 528, "MAP/MAP033.GNS"},
	MapGNS034: {26362, 588, "MAP/MAP034.GNS"},
	MapGNS035: {27028, 1148, "MAP/MAP035.GNS"},
	MapGNS036: {27643, 1188, "MAP/MAP036.GNS"},
	MapGNS037: {27793, 308, "MAP/MAP037.GNS"},
	MapGNS038: {28467, 1228, "MAP/MAP038.GNS"},
	MapGNS039: {28555, 268, "MAP/MAP039.GNS"},
	MapGNS040: {29165, 988, "MAP/MAP040.GNS"},
	MapGNS041: {29311, 568, "MAP/MAP041.GNS"},
	MapGNS042: {29653, 668, "MAP/MAP042.GNS"},
	MapGNS043: {29807, 368, "MAP/MAP043.GNS"},
	MapGNS044: {30473, 1148, "MAP/MAP044.GNS"},
	MapGNS045: {30622, 328, "MAP/MAP045.GNS"},
	MapGNS046: {30966, 668, "MAP/MAP046.GNS"},
	MapGNS047: {31697, 1488, "MAP/MAP047.GNS"},
	MapGNS048: {32365, 1168, "MAP/MAP048.GNS"},
	MapGNS049: {33032, 1128, "MAP/MAP049.GNS"},
	MapGNS050: {33701, 1148, "MAP/MAP050.GNS"},
	MapGNS051: {34349, 1328, "MAP/MAP051.GNS"},
	MapGNS052: {34440, 288, "MAP/MAP052.GNS"},
	MapGNS053: {34566, 648, "MAP/MAP053.GNS"},
	MapGNS054: {34647, 228, "MAP/MAP054.GNS"},
	MapGNS055: {34745, 468, "MAP/MAP055.GNS"},
	MapGNS056: {35350, 1228, "MAP/MAP056.GNS"},
	MapGNS057: {35436, 248, "MAP/MAP057.GNS"},
	MapGNS058: {35519, 248, "MAP/MAP058.GNS"},
	MapGNS059: {35603, 248, "MAP/MAP059.GNS"},
	MapGNS060: {35683, 248, "MAP/MAP060.GNS"},
	MapGNS061: {35765, 368, "MAP/MAP061.GNS"},
	MapGNS062: {36052, 548, "MAP/MAP062.GNS"},
	MapGNS063: {36394, 628, "MAP/MAP063.GNS"},
	MapGNS064: {36530, 548, "MAP/MAP064.GNS"},
	MapGNS065: {36612, 248, "MAP/MAP065.GNS"},
	MapGNS066: {37214, 1108, "MAP/MAP066.GNS"},
	MapGNS067: {37817, 1108, "MAP/MAP067.GNS"},
	MapGNS068: {38386, 1088, "MAP/MAP068.GNS"},
	MapGNS069: {38473, 228, "MAP/MAP069.GNS"},
	MapGNS070: {38622, 328, "MAP/MAP070.GNS"},
	MapGNS071: {39288, 1168, "MAP/MAP071.GNS"},
	MapGNS072: {39826, 1088, "MAP/MAP072.GNS"},
	MapGNS073: {40120, 608, "MAP/MAP073.GNS"},
	MapGNS074: {40724, 968, "MAP/MAP074.GNS"},
	MapGNS075: {41391, 1188, "MAP/MAP075.GNS"},
	MapGNS076: {41865, 1068, "MAP/MAP076.GNS"},
	MapGNS077: {42532, 1188, "MAP/MAP077.GNS"},
	MapGNS078: {43200, 1228, "MAP/MAP078.GNS"},
	MapGNS079: {43295, 768, "MAP/MAP079.GNS"},
	MapGNS080: {43901, 1088, "MAP/MAP080.GNS"},
	MapGNS081: {44569, 1128, "MAP/MAP081.GNS"},
	MapGNS082: {45044, 1068, "MAP/MAP082.GNS"},
	MapGNS083: {45164, 1316, "MAP/MAP083.GNS"},
	MapGNS084: {45829, 1128, "MAP/MAP084.GNS"},
	MapGNS085: {46498, 948, "MAP/MAP085.GNS"},
	MapGNS086: {47167, 948, "MAP/MAP086.GNS"},
	MapGNS087: {47260, 808, "MAP/MAP087.GNS"},
	MapGNS088: {47928, 988, "MAP/MAP088.GNS"},
	MapGNS089: {48595, 1128, "MAP/MAP089.GNS"},
	MapGNS090: {49260, 1128, "MAP/MAP090.GNS"},
	MapGNS091: {49538, 628, "MAP/MAP091.GNS"},
	MapGNS092: {50108, 1088, "MAP/MAP092.GNS"},
	MapGNS093: {50387, 528, "MAP/MAP093.GNS"},
	MapGNS094: {50554, 448, "MAP/MAP094.GNS"},
	MapGNS095: {51120, 1048, "MAP/MAP095.GNS"},
	MapGNS096: {51416, 568, "MAP/MAP096.GNS"},
	MapGNS097: {52082, 1108, "MAP/MAP097.GNS"},
	MapGNS098: {52749, 1128, "MAP/MAP098.GNS"},
	MapGNS099: {53414, 1128, "MAP/MAP099.GNS"},
	MapGNS100: {53502, 228, "MAP/MAP100.GNS"},
	MapGNS101: {53579, 268, "MAP/MAP101.GNS"},
	MapGNS102: {53659, 228, "MAP/MAP102.GNS"},
	MapGNS103: {54273, 1088, "MAP/MAP103.GNS"},
	MapGNS104: {54359, 328, "MAP/MAP104.GNS"},
	MapGNS105: {54528, 728, "MAP/MAP105.GNS"},
	MapGNS106: {54621, 628, "MAP/MAP106.GNS"},
	MapGNS107: {54716, 628, "MAP/MAP107.GNS"},
	MapGNS108: {54812, 628, "MAP/MAP108.GNS"},
	MapGNS109: {54909, 628, "MAP/MAP109.GNS"},
	MapGNS110: {55004, 628, "MAP/MAP110.GNS"},
	MapGNS111: {55097, 668, "MAP/MAP111.GNS"},
	MapGNS112: {55192, 608, "MAP/MAP112.GNS"},
	MapGNS113: {55286, 628, "MAP/MAP113.GNS"},
	MapGNS114: {55383, 628, "MAP/MAP114.GNS"},
	MapGNS115: {56051, 1128, "MAP/MAP115.GNS"},
	MapGNS116: {56123, 208, "MAP/MAP116.GNS"},
	MapGNS117: {56201, 208, "MAP/MAP117.GNS"},
	MapGNS118: {56279, 208, "MAP/MAP118.GNS"},
	MapGNS119: {56356, 208, "MAP/MAP119.GNS"},
	MapGNS125: {56435, 208, "MAP/MAP125.GNS"},
}

// Desc returns the catalog entry for id.
func Desc(id FileID) (FileDesc, bool) {
	d, ok := catalog[id]
	return d, ok
}

// DescBySector looks up the file that starts at the given sector. A miss
// returns the zero descriptor; sub-resources named only by GNS records
// are not in the catalog and callers treat that as ordinary.
func DescBySector(sector uint32) FileDesc {
	for _, d := range catalog {
		if d.Sector == sector {
			return d
		}
	}
	return FileDesc{}
}

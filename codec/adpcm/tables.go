/*
NAME
  tables.go

DESCRIPTION
  tables.go holds the precomputed delta and next-index lookup tables used by
  the table driven IMA ADPCM decoder.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package adpcm

// Rows are step indices 0..88, columns are nibbles 0x0..0xf. Columns 8..15
// carry the sign bit and hold the negated deltas of columns 0..7.

// deltaTable holds the signed sample delta for every (index, nibble) pair,
// keyed by index<<4 | nibble.
var deltaTable = [numSteps * 16]int32{
	0, 1, 3, 4, 7, 8, 10, 11, 0, -1, -3, -4, -7, -8, -10, -11,
	1, 3, 5, 7, 9, 11, 13, 15, -1, -3, -5, -7, -9, -11, -13, -15,
	1, 3, 5, 7, 10, 12, 14, 16, -1, -3, -5, -7, -10, -12, -14, -16,
	1, 3, 6, 8, 11, 13, 16, 18, -1, -3, -6, -8, -11, -13, -16, -18,
	1, 3, 6, 8, 12, 14, 17, 19, -1, -3, -6, -8, -12, -14, -17, -19,
	1, 4, 7, 10, 13, 16, 19, 22, -1, -4, -7, -10, -13, -16, -19, -22,
	1, 4, 7, 10, 14, 17, 20, 23, -1, -4, -7, -10, -14, -17, -20, -23,
	1, 4, 8, 11, 15, 18, 22, 25, -1, -4, -8, -11, -15, -18, -22, -25,
	2, 6, 10, 14, 18, 22, 26, 30, -2, -6, -10, -14, -18, -22, -26, -30,
	2, 6, 10, 14, 19, 23, 27, 31, -2, -6, -10, -14, -19, -23, -27, -31,
	2, 6, 11, 15, 21, 25, 30, 34, -2, -6, -11, -15, -21, -25, -30, -34,
	2, 7, 12, 17, 23, 28, 33, 38, -2, -7, -12, -17, -23, -28, -33, -38,
	2, 7, 13, 18, 25, 30, 36, 41, -2, -7, -13, -18, -25, -30, -36, -41,
	3, 9, 15, 21, 28, 34, 40, 46, -3, -9, -15, -21, -28, -34, -40, -46,
	3, 10, 17, 24, 31, 38, 45, 52, -3, -10, -17, -24, -31, -38, -45, -52,
	3, 10, 18, 25, 34, 41, 49, 56, -3, -10, -18, -25, -34, -41, -49, -56,
	4, 12, 21, 29, 38, 46, 55, 63, -4, -12, -21, -29, -38, -46, -55, -63,
	4, 13, 22, 31, 41, 50, 59, 68, -4, -13, -22, -31, -41, -50, -59, -68,
	5, 15, 25, 35, 46, 56, 66, 76, -5, -15, -25, -35, -46, -56, -66, -76,
	5, 16, 27, 38, 50, 61, 72, 83, -5, -16, -27, -38, -50, -61, -72, -83,
	6, 18, 31, 43, 56, 68, 81, 93, -6, -18, -31, -43, -56, -68, -81, -93,
	6, 19, 33, 46, 61, 74, 88, 101, -6, -19, -33, -46, -61, -74, -88, -101,
	7, 22, 37, 52, 67, 82, 97, 112, -7, -22, -37, -52, -67, -82, -97, -112,
	8, 24, 41, 57, 74, 90, 107, 123, -8, -24, -41, -57, -74, -90, -107, -123,
	9, 27, 45, 63, 82, 100, 118, 136, -9, -27, -45, -63, -82, -100, -118, -136,
	10, 30, 50, 70, 90, 110, 130, 150, -10, -30, -50, -70, -90, -110, -130, -150,
	11, 33, 55, 77, 99, 121, 143, 165, -11, -33, -55, -77, -99, -121, -143, -165,
	12, 36, 60, 84, 109, 133, 157, 181, -12, -36, -60, -84, -109, -133, -157, -181,
	13, 39, 66, 92, 120, 146, 173, 199, -13, -39, -66, -92, -120, -146, -173, -199,
	14, 43, 73, 102, 132, 161, 191, 220, -14, -43, -73, -102, -132, -161, -191, -220,
	16, 48, 81, 113, 146, 178, 211, 243, -16, -48, -81, -113, -146, -178, -211, -243,
	17, 52, 88, 123, 160, 195, 231, 266, -17, -52, -88, -123, -160, -195, -231, -266,
	19, 58, 97, 136, 176, 215, 254, 293, -19, -58, -97, -136, -176, -215, -254, -293,
	21, 64, 107, 150, 194, 237, 280, 323, -21, -64, -107, -150, -194, -237, -280, -323,
	23, 70, 118, 165, 213, 260, 308, 355, -23, -70, -118, -165, -213, -260, -308, -355,
	26, 78, 130, 182, 235, 287, 339, 391, -26, -78, -130, -182, -235, -287, -339, -391,
	28, 85, 143, 200, 258, 315, 373, 430, -28, -85, -143, -200, -258, -315, -373, -430,
	31, 94, 157, 220, 284, 347, 410, 473, -31, -94, -157, -220, -284, -347, -410, -473,
	34, 103, 173, 242, 313, 382, 452, 521, -34, -103, -173, -242, -313, -382, -452, -521,
	38, 114, 191, 267, 345, 421, 498, 574, -38, -114, -191, -267, -345, -421, -498, -574,
	42, 126, 210, 294, 379, 463, 547, 631, -42, -126, -210, -294, -379, -463, -547, -631,
	46, 138, 231, 323, 417, 509, 602, 694, -46, -138, -231, -323, -417, -509, -602, -694,
	51, 153, 255, 357, 459, 561, 663, 765, -51, -153, -255, -357, -459, -561, -663, -765,
	56, 168, 280, 392, 505, 617, 729, 841, -56, -168, -280, -392, -505, -617, -729, -841,
	61, 184, 308, 431, 555, 678, 802, 925, -61, -184, -308, -431, -555, -678, -802, -925,
	68, 204, 340, 476, 612, 748, 884, 1020, -68, -204, -340, -476, -612, -748, -884, -1020,
	74, 223, 373, 522, 672, 821, 971, 1120, -74, -223, -373, -522, -672, -821, -971, -1120,
	82, 246, 411, 575, 740, 904, 1069, 1233, -82, -246, -411, -575, -740, -904, -1069, -1233,
	90, 271, 452, 633, 814, 995, 1176, 1357, -90, -271, -452, -633, -814, -995, -1176, -1357,
	99, 298, 497, 696, 895, 1094, 1293, 1492, -99, -298, -497, -696, -895, -1094, -1293, -1492,
	109, 328, 547, 766, 985, 1204, 1423, 1642, -109, -328, -547, -766, -985, -1204, -1423, -1642,
	120, 360, 601, 841, 1083, 1323, 1564, 1804, -120, -360, -601, -841, -1083, -1323, -1564, -1804,
	132, 397, 662, 927, 1192, 1457, 1722, 1987, -132, -397, -662, -927, -1192, -1457, -1722, -1987,
	145, 436, 728, 1019, 1311, 1602, 1894, 2185, -145, -436, -728, -1019, -1311, -1602, -1894, -2185,
	160, 480, 801, 1121, 1442, 1762, 2083, 2403, -160, -480, -801, -1121, -1442, -1762, -2083, -2403,
	176, 528, 881, 1233, 1587, 1939, 2292, 2644, -176, -528, -881, -1233, -1587, -1939, -2292, -2644,
	194, 582, 970, 1358, 1746, 2134, 2522, 2910, -194, -582, -970, -1358, -1746, -2134, -2522, -2910,
	213, 639, 1066, 1492, 1920, 2346, 2773, 3199, -213, -639, -1066, -1492, -1920, -2346, -2773, -3199,
	234, 703, 1173, 1642, 2112, 2581, 3051, 3520, -234, -703, -1173, -1642, -2112, -2581, -3051, -3520,
	258, 774, 1291, 1807, 2324, 2840, 3357, 3873, -258, -774, -1291, -1807, -2324, -2840, -3357, -3873,
	284, 852, 1420, 1988, 2556, 3124, 3692, 4260, -284, -852, -1420, -1988, -2556, -3124, -3692, -4260,
	312, 936, 1561, 2185, 2811, 3435, 4060, 4684, -312, -936, -1561, -2185, -2811, -3435, -4060, -4684,
	343, 1030, 1717, 2404, 3092, 3779, 4466, 5153, -343, -1030, -1717, -2404, -3092, -3779, -4466, -5153,
	378, 1134, 1890, 2646, 3402, 4158, 4914, 5670, -378, -1134, -1890, -2646, -3402, -4158, -4914, -5670,
	415, 1246, 2078, 2909, 3742, 4573, 5405, 6236, -415, -1246, -2078, -2909, -3742, -4573, -5405, -6236,
	457, 1372, 2287, 3202, 4117, 5032, 5947, 6862, -457, -1372, -2287, -3202, -4117, -5032, -5947, -6862,
	503, 1509, 2516, 3522, 4529, 5535, 6542, 7548, -503, -1509, -2516, -3522, -4529, -5535, -6542, -7548,
	553, 1660, 2767, 3874, 4981, 6088, 7195, 8302, -553, -1660, -2767, -3874, -4981, -6088, -7195, -8302,
	608, 1825, 3043, 4260, 5479, 6696, 7914, 9131, -608, -1825, -3043, -4260, -5479, -6696, -7914, -9131,
	669, 2008, 3348, 4687, 6027, 7366, 8706, 10045, -669, -2008, -3348, -4687, -6027, -7366, -8706, -10045,
	736, 2209, 3683, 5156, 6630, 8103, 9577, 11050, -736, -2209, -3683, -5156, -6630, -8103, -9577, -11050,
	810, 2431, 4052, 5673, 7294, 8915, 10536, 12157, -810, -2431, -4052, -5673, -7294, -8915, -10536, -12157,
	891, 2674, 4457, 6240, 8023, 9806, 11589, 13372, -891, -2674, -4457, -6240, -8023, -9806, -11589, -13372,
	980, 2941, 4902, 6863, 8825, 10786, 12747, 14708, -980, -2941, -4902, -6863, -8825, -10786, -12747, -14708,
	1078, 3235, 5393, 7550, 9708, 11865, 14023, 16180, -1078, -3235, -5393, -7550, -9708, -11865, -14023, -16180,
	1186, 3559, 5932, 8305, 10679, 13052, 15425, 17798, -1186, -3559, -5932, -8305, -10679, -13052, -15425, -17798,
	1305, 3915, 6526, 9136, 11747, 14357, 16968, 19578, -1305, -3915, -6526, -9136, -11747, -14357, -16968, -19578,
	1435, 4306, 7178, 10049, 12922, 15793, 18665, 21536, -1435, -4306, -7178, -10049, -12922, -15793, -18665, -21536,
	1579, 4737, 7896, 11054, 14214, 17372, 20531, 23689, -1579, -4737, -7896, -11054, -14214, -17372, -20531, -23689,
	1737, 5211, 8686, 12160, 15636, 19110, 22585, 26059, -1737, -5211, -8686, -12160, -15636, -19110, -22585, -26059,
	1911, 5733, 9555, 13377, 17200, 21022, 24844, 28666, -1911, -5733, -9555, -13377, -17200, -21022, -24844, -28666,
	2102, 6306, 10511, 14715, 18920, 23124, 27329, 31533, -2102, -6306, -10511, -14715, -18920, -23124, -27329, -31533,
	2312, 6937, 11562, 16187, 20812, 25437, 30062, 34687, -2312, -6937, -11562, -16187, -20812, -25437, -30062, -34687,
	2543, 7630, 12718, 17805, 22893, 27980, 33068, 38155, -2543, -7630, -12718, -17805, -22893, -27980, -33068, -38155,
	2798, 8394, 13990, 19586, 25183, 30779, 36375, 41971, -2798, -8394, -13990, -19586, -25183, -30779, -36375, -41971,
	3077, 9232, 15388, 21543, 27700, 33855, 40011, 46166, -3077, -9232, -15388, -21543, -27700, -33855, -40011, -46166,
	3385, 10156, 16928, 23699, 30471, 37242, 44014, 50785, -3385, -10156, -16928, -23699, -30471, -37242, -44014, -50785,
	3724, 11172, 18621, 26069, 33518, 40966, 48415, 55863, -3724, -11172, -18621, -26069, -33518, -40966, -48415, -55863,
	4095, 12286, 20478, 28669, 36862, 45053, 53245, 61436, -4095, -12286, -20478, -28669, -36862, -45053, -53245, -61436,
}

// nextIndexTable holds the step index that follows every (index, nibble)
// pair, keyed like deltaTable.
var nextIndexTable = [numSteps * 16]uint8{
	0, 0, 0, 0, 2, 4, 6, 8, 0, 0, 0, 0, 2, 4, 6, 8,
	0, 0, 0, 0, 3, 5, 7, 9, 0, 0, 0, 0, 3, 5, 7, 9,
	1, 1, 1, 1, 4, 6, 8, 10, 1, 1, 1, 1, 4, 6, 8, 10,
	2, 2, 2, 2, 5, 7, 9, 11, 2, 2, 2, 2, 5, 7, 9, 11,
	3, 3, 3, 3, 6, 8, 10, 12, 3, 3, 3, 3, 6, 8, 10, 12,
	4, 4, 4, 4, 7, 9, 11, 13, 4, 4, 4, 4, 7, 9, 11, 13,
	5, 5, 5, 5, 8, 10, 12, 14, 5, 5, 5, 5, 8, 10, 12, 14,
	6, 6, 6, 6, 9, 11, 13, 15, 6, 6, 6, 6, 9, 11, 13, 15,
	7, 7, 7, 7, 10, 12, 14, 16, 7, 7, 7, 7, 10, 12, 14, 16,
	8, 8, 8, 8, 11, 13, 15, 17, 8, 8, 8, 8, 11, 13, 15, 17,
	9, 9, 9, 9, 12, 14, 16, 18, 9, 9, 9, 9, 12, 14, 16, 18,
	10, 10, 10, 10, 13, 15, 17, 19, 10, 10, 10, 10, 13, 15, 17, 19,
	11, 11, 11, 11, 14, 16, 18, 20, 11, 11, 11, 11, 14, 16, 18, 20,
	12, 12, 12, 12, 15, 17, 19, 21, 12, 12, 12, 12, 15, 17, 19, 21,
	13, 13, 13, 13, 16, 18, 20, 22, 13, 13, 13, 13, 16, 18, 20, 22,
	14, 14, 14, 14, 17, 19, 21, 23, 14, 14, 14, 14, 17, 19, 21, 23,
	15, 15, 15, 15, 18, 20, 22, 24, 15, 15, 15, 15, 18, 20, 22, 24,
	16, 16, 16, 16, 19, 21, 23, 25, 16, 16, 16, 16, 19, 21, 23, 25,
	17, 17, 17, 17, 20, 22, 24, 26, 17, 17, 17, 17, 20, 22, 24, 26,
	18, 18, 18, 18, 21, 23, 25, 27, 18, 18, 18, 18, 21, 23, 25, 27,
	19, 19, 19, 19, 22, 24, 26, 28, 19, 19, 19, 19, 22, 24, 26, 28,
	20, 20, 20, 20, 23, 25, 27, 29, 20, 20, 20, 20, 23, 25, 27, 29,
	21, 21, 21, 21, 24, 26, 28, 30, 21, 21, 21, 21, 24, 26, 28, 30,
	22, 22, 22, 22, 25, 27, 29, 31, 22, 22, 22, 22, 25, 27, 29, 31,
	23, 23, 23, 23, 26, 28, 30, 32, 23, 23, 23, 23, 26, 28, 30, 32,
	24, 24, 24, 24, 27, 29, 31, 33, 24, 24, 24, 24, 27, 29, 31, 33,
	25, 25, 25, 25, 28, 30, 32, 34, 25, 25, 25, 25, 28, 30, 32, 34,
	26, 26, 26, 26, 29, 31, 33, 35, 26, 26, 26, 26, 29, 31, 33, 35,
	27, 27, 27, 27, 30, 32, 34, 36, 27, 27, 27, 27, 30, 32, 34, 36,
	28, 28, 28, 28, 31, 33, 35, 37, 28, 28, 28, 28, 31, 33, 35, 37,
	29, 29, 29, 29, 32, 34, 36, 38, 29, 29, 29, 29, 32, 34, 36, 38,
	30, 30, 30, 30, 33, 35, 37, 39, 30, 30, 30, 30, 33, 35, 37, 39,
	31, 31, 31, 31, 34, 36, 38, 40, 31, 31, 31, 31, 34, 36, 38, 40,
	32, 32, 32, 32, 35, 37, 39, 41, 32, 32, 32, 32, 35, 37, 39, 41,
	33, 33, 33, 33, 36, 38, 40, 42, 33, 33, 33, 33, 36, 38, 40, 42,
	34, 34, 34, 34, 37, 39, 41, 43, 34, 34, 34, 34, 37, 39, 41, 43,
	35, 35, 35, 35, 38, 40, 42, 44, 35, 35, 35, 35, 38, 40, 42, 44,
	36, 36, 36, 36, 39, 41, 43, 45, 36, 36, 36, 36, 39, 41, 43, 45,
	37, 37, 37, 37, 40, 42, 44, 46, 37, 37, 37, 37, 40, 42, 44, 46,
	38, 38, 38, 38, 41, 43, 45, 47, 38, 38, 38, 38, 41, 43, 45, 47,
	39, 39, 39, 39, 42, 44, 46, 48, 39, 39, 39, 39, 42, 44, 46, 48,
	40, 40, 40, 40, 43, 45, 47, 49, 40, 40, 40, 40, 43, 45, 47, 49,
	41, 41, 41, 41, 44, 46, 48, 50, 41, 41, 41, 41, 44, 46, 48, 50,
	42, 42, 42, 42, 45, 47, 49, 51, 42, 42, 42, 42, 45, 47, 49, 51,
	43, 43, 43, 43, 46, 48, 50, 52, 43, 43, 43, 43, 46, 48, 50, 52,
	44, 44, 44, 44, 47, 49, 51, 53, 44, 44, 44, 44, 47, 49, 51, 53,
	45, 45, 45, 45, 48, 50, 52, 54, 45, 45, 45, 45, 48, 50, 52, 54,
	46, 46, 46, 46, 49, 51, 53, 55, 46, 46, 46, 46, 49, 51, 53, 55,
	47, 47, 47, 47, 50, 52, 54, 56, 47, 47, 47, 47, 50, 52, 54, 56,
	48, 48, 48, 48, 51, 53, 55, 57, 48, 48, 48, 48, 51, 53, 55, 57,
	49, 49, 49, 49, 52, 54, 56, 58, 49, 49, 49, 49, 52, 54, 56, 58,
	50, 50, 50, 50, 53, 55, 57, 59, 50, 50, 50, 50, 53, 55, 57, 59,
	51, 51, 51, 51, 54, 56, 58, 60, 51, 51, 51, 51, 54, 56, 58, 60,
	52, 52, 52, 52, 55, 57, 59, 61, 52, 52, 52, 52, 55, 57, 59, 61,
	53, 53, 53, 53, 56, 58, 60, 62, 53, 53, 53, 53, 56, 58, 60, 62,
	54, 54, 54, 54, 57, 59, 61, 63, 54, 54, 54, 54, 57, 59, 61, 63,
	55, 55, 55, 55, 58, 60, 62, 64, 55, 55, 55, 55, 58, 60, 62, 64,
	56, 56, 56, 56, 59, 61, 63, 65, 56, 56, 56, 56, 59, 61, 63, 65,
	57, 57, 57, 57, 60, 62, 64, 66, 57, 57, 57, 57, 60, 62, 64, 66,
	58, 58, 58, 58, 61, 63, 65, 67, 58, 58, 58, 58, 61, 63, 65, 67,
	59, 59, 59, 59, 62, 64, 66, 68, 59, 59, 59, 59, 62, 64, 66, 68,
	60, 60, 60, 60, 63, 65, 67, 69, 60, 60, 60, 60, 63, 65, 67, 69,
	61, 61, 61, 61, 64, 66, 68, 70, 61, 61, 61, 61, 64, 66, 68, 70,
	62, 62, 62, 62, 65, 67, 69, 71, 62, 62, 62, 62, 65, 67, 69, 71,
	63, 63, 63, 63, 66, 68, 70, 72, 63, 63, 63, 63, 66, 68, 70, 72,
	64, 64, 64, 64, 67, 69, 71, 73, 64, 64, 64, 64, 67, 69, 71, 73,
	65, 65, 65, 65, 68, 70, 72, 74, 65, 65, 65, 65, 68, 70, 72, 74,
	66, 66, 66, 66, 69, 71, 73, 75, 66, 66, 66, 66, 69, 71, 73, 75,
	67, 67, 67, 67, 70, 72, 74, 76, 67, 67, 67, 67, 70, 72, 74, 76,
	68, 68, 68, 68, 71, 73, 75, 77, 68, 68, 68, 68, 71, 73, 75, 77,
	69, 69, 69, 69, 72, 74, 76, 78, 69, 69, 69, 69, 72, 74, 76, 78,
	70, 70, 70, 70, 73, 75, 77, 79, 70, 70, 70, 70, 73, 75, 77, 79,
	71, 71, 71, 71, 74, 76, 78, 80, 71, 71, 71, 71, 74, 76, 78, 80,
	72, 72, 72, 72, 75, 77, 79, 81, 72, 72, 72, 72, 75, 77, 79, 81,
	73, 73, 73, 73, 76, 78, 80, 82, 73, 73, 73, 73, 76, 78, 80, 82,
	74, 74, 74, 74, 77, 79, 81, 83, 74, 74, 74, 74, 77, 79, 81, 83,
	75, 75, 75, 75, 78, 80, 82, 84, 75, 75, 75, 75, 78, 80, 82, 84,
	76, 76, 76, 76, 79, 81, 83, 85, 76, 76, 76, 76, 79, 81, 83, 85,
	77, 77, 77, 77, 80, 82, 84, 86, 77, 77, 77, 77, 80, 82, 84, 86,
	78, 78, 78, 78, 81, 83, 85, 87, 78, 78, 78, 78, 81, 83, 85, 87,
	79, 79, 79, 79, 82, 84, 86, 88, 79, 79, 79, 79, 82, 84, 86, 88,
	80, 80, 80, 80, 83, 85, 87, 88, 80, 80, 80, 80, 83, 85, 87, 88,
	81, 81, 81, 81, 84, 86, 88, 88, 81, 81, 81, 81, 84, 86, 88, 88,
	82, 82, 82, 82, 85, 87, 88, 88, 82, 82, 82, 82, 85, 87, 88, 88,
	83, 83, 83, 83, 86, 88, 88, 88, 83, 83, 83, 83, 86, 88, 88, 88,
	84, 84, 84, 84, 87, 88, 88, 88, 84, 84, 84, 84, 87, 88, 88, 88,
	85, 85, 85, 85, 88, 88, 88, 88, 85, 85, 85, 85, 88, 88, 88, 88,
	86, 86, 86, 86, 88, 88, 88, 88, 86, 86, 86, 86, 88, 88, 88, 88,
	87, 87, 87, 87, 88, 88, 88, 88, 87, 87, 87, 87, 88, 88, 88, 88,
}

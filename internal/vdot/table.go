package vdot

import "math"

// entry is one row of the Daniels VDOT table: equivalent race times in
// seconds for a given VDOT score. Covers recreational through elite (30–85).
type entry struct {
	vdot  float64
	t5K   float64
	t10K  float64
	tHalf float64
	tFull float64
}

var table = []entry{
	{30, 1860, 3876, 8388, 17496},
	{31, 1806, 3762, 8136, 16980},
	{32, 1752, 3654, 7896, 16488},
	{33, 1704, 3552, 7674, 16020},
	{34, 1656, 3450, 7458, 15570},
	{35, 1614, 3360, 7254, 15138},
	{36, 1572, 3270, 7062, 14730},
	{37, 1530, 3186, 6876, 14334},
	{38, 1494, 3102, 6702, 13956},
	{39, 1458, 3024, 6534, 13596},
	{40, 1422, 2952, 6372, 13248},
	{41, 1392, 2880, 6222, 12918},
	{42, 1356, 2814, 6078, 12600},
	{43, 1326, 2748, 5940, 12300},
	{44, 1296, 2688, 5802, 12006},
	{45, 1266, 2628, 5676, 11730},
	{46, 1242, 2568, 5550, 11460},
	{47, 1212, 2514, 5430, 11202},
	{48, 1188, 2460, 5316, 10956},
	{49, 1164, 2412, 5208, 10722},
	{50, 1140, 2364, 5100, 10494},
	{51, 1116, 2316, 4998, 10278},
	{52, 1098, 2274, 4902, 10068},
	{53, 1074, 2232, 4806, 9870},
	{54, 1056, 2190, 4716, 9678},
	{55, 1038, 2154, 4632, 9492},
	{56, 1020, 2112, 4548, 9312},
	{57, 1002, 2076, 4470, 9144},
	{58, 984, 2040, 4392, 8976},
	{59, 972, 2010, 4320, 8820},
	{60, 954, 1974, 4248, 8664},
	{61, 942, 1944, 4182, 8520},
	{62, 924, 1914, 4116, 8376},
	{63, 912, 1884, 4050, 8238},
	{64, 900, 1860, 3990, 8106},
	{65, 888, 1830, 3930, 7980},
	{66, 876, 1806, 3876, 7860},
	{67, 864, 1782, 3822, 7740},
	{68, 852, 1758, 3768, 7626},
	{69, 840, 1734, 3720, 7518},
	{70, 834, 1716, 3672, 7410},
	{71, 822, 1692, 3624, 7308},
	{72, 810, 1674, 3582, 7212},
	{73, 804, 1656, 3540, 7116},
	{74, 792, 1632, 3498, 7026},
	{75, 786, 1614, 3456, 6936},
	{76, 774, 1596, 3420, 6852},
	{77, 768, 1578, 3384, 6768},
	{78, 756, 1560, 3348, 6690},
	{79, 750, 1548, 3312, 6612},
	{80, 744, 1530, 3282, 6540},
	{81, 738, 1518, 3246, 6468},
	{82, 726, 1500, 3216, 6396},
	{83, 720, 1488, 3186, 6330},
	{84, 714, 1470, 3156, 6264},
	{85, 708, 1458, 3126, 6198},
}

// Standard race distances in meters.
const (
	Distance5K       = 5000.0
	Distance10K      = 10000.0
	DistanceHalf     = 21097.5
	DistanceMarathon = 42195.0
)

func (e entry) timeFor(distanceMeters float64) float64 {
	switch {
	case within(distanceMeters, Distance5K):
		return e.t5K
	case within(distanceMeters, Distance10K):
		return e.t10K
	case within(distanceMeters, DistanceHalf):
		return e.tHalf
	case within(distanceMeters, DistanceMarathon):
		return e.tFull
	default:
		return e.interpolate(distanceMeters)
	}
}

// within reports whether a distance is inside 5% of a standard distance.
func within(distance, target float64) bool {
	tol := target * 0.05
	diff := distance - target
	return diff >= -tol && diff <= tol
}

// interpolate estimates the equivalent time for a non-standard distance via
// log-log interpolation between the two bracketing standard distances, which
// approximates the power-law relation between race distance and time.
func (e entry) interpolate(distanceMeters float64) float64 {
	type point struct{ dist, time float64 }
	standards := []point{
		{Distance5K, e.t5K},
		{Distance10K, e.t10K},
		{DistanceHalf, e.tHalf},
		{DistanceMarathon, e.tFull},
	}

	lower, upper := standards[0], standards[1]
	switch {
	case distanceMeters <= standards[0].dist:
		// extrapolate below 5K from the 5K/10K pair
	case distanceMeters >= standards[len(standards)-1].dist:
		lower, upper = standards[len(standards)-2], standards[len(standards)-1]
	default:
		for i := 1; i < len(standards); i++ {
			if distanceMeters <= standards[i].dist {
				lower, upper = standards[i-1], standards[i]
				break
			}
		}
	}

	logDist := math.Log(distanceMeters/lower.dist) / math.Log(upper.dist/lower.dist)
	return lower.time * math.Pow(upper.time/lower.time, logDist)
}

package table

// lithium is the lithium potential from Kohn's paper, Table I.
var lithium = []Sample{
	{0.02, 5.727},
	{0.04, 5.544},
	{0.06, 5.450},
	{0.08, 5.351},
	{0.10, 5.253},
	{0.12, 5.157},
	{0.14, 5.058},
	{0.16, 4.960},
	{0.18, 4.862},
	{0.20, 4.762},
	{0.24, 4.563},
	{0.28, 4.360},
	{0.32, 4.1584},
	{0.36, 3.9463},
	{0.40, 3.7360},
	{0.44, 3.5429},
	{0.48, 3.3797},
	{0.52, 3.2417},
	{0.56, 3.1209},
	{0.60, 3.0138},
	{0.68, 2.8342},
	{0.76, 2.6881},
	{0.84, 2.5662},
	{0.92, 2.4242},
	{1.00, 2.3766},
	{1.08, 2.3058},
	{1.16, 2.2458},
	{1.24, 2.2035},
	{1.32, 2.1661},
	{1.40, 2.1350},
	{1.48, 2.1090},
	{1.64, 2.0697},
	{1.80, 2.0466},
	{1.96, 2.0325},
	{2.12, 2.0288},
	{2.28, 2.0292},
	{2.44, 2.0228},
	{2.60, 2.0124},
	{2.76, 2.0065},
	{2.92, 2.0031},
	{3.08, 2.0015},
	{3.24, 2.0008},
	{3.40, 2.0004},
	{3.56, 2.0002},
	{3.72, 2.0001},
}

// Lithium returns the tabulated lithium potential (energy vs. charge).
// The data is known to be valid, so a failure here is a programming error.
func Lithium() *Table {
	t, err := New(lithium)
	if err != nil {
		panic("lithium table: " + err.Error())
	}
	return t
}

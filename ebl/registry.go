package ebl

import (
	"fmt"
	"strconv"
	"strings"
)

// ModelID identifies a published EBL optical-depth table.
type ModelID int

const (
	Franceschini2008 ModelID = iota + 1
	Franceschini2017
	Dominguez2011
	Gilmore2012
	Finke2010
	KneiskeDole2010
	Inoue2013
)

// EnergyUnit is the energy unit of the first column of a table file,
// expressed as the number of file units per TeV.
type EnergyUnit float64

const (
	TeV EnergyUnit = 1
	GeV EnergyUnit = 1000
)

// Metadata describes a registered model.
type Metadata struct {
	ID ModelID

	// Name is the short identifier, e.g. "Franceschini2008".
	Name string

	// Reference is the publication the table comes from.
	Reference string

	// File is the table resource name, relative to the tables FS.
	File string

	// Redshift is the redshift of each optical-depth column.
	Redshift []float64

	// EnergyUnit is the unit of the energy column in File.
	EnergyUnit EnergyUnit

	// HorizonSeed is the starting energy of the horizon search, in TeV.
	HorizonSeed float64
}

// MinRedshift returns the first redshift grid point.
func (m Metadata) MinRedshift() float64 { return m.Redshift[0] }

// MaxRedshift returns the last redshift grid point.
func (m Metadata) MaxRedshift() float64 { return m.Redshift[len(m.Redshift)-1] }

var standardRedshifts = []float64{0, 0.01, 0.03, 0.1, 0.3, 0.5, 1.0, 1.5, 2.0, 3.0}

var registry = map[ModelID]Metadata{
	Franceschini2008: {
		Name:        "Franceschini2008",
		Reference:   "Franceschini, Rodighiero & Vaccari (2008)",
		File:        "Franceschini2008.dat",
		Redshift:    standardRedshifts,
		EnergyUnit:  TeV,
		HorizonSeed: 0.02,
	},
	Franceschini2017: {
		Name:        "Franceschini2017",
		Reference:   "Franceschini & Rodighiero (2017)",
		File:        "Franceschini2017.dat",
		Redshift:    []float64{0, 0.01, 0.03, 0.1, 0.3, 0.5, 1.0, 1.5, 2.0, 2.5, 3.0},
		EnergyUnit:  TeV,
		HorizonSeed: 0.02,
	},
	Dominguez2011: {
		Name:        "Dominguez2011",
		Reference:   "Dominguez et al. (2011)",
		File:        "Dominguez2011.dat",
		Redshift:    standardRedshifts,
		EnergyUnit:  TeV,
		HorizonSeed: 0.02,
	},
	Gilmore2012: {
		Name:        "Gilmore2012",
		Reference:   "Gilmore et al. (2012)",
		File:        "Gilmore2012.dat",
		Redshift:    standardRedshifts,
		EnergyUnit:  TeV,
		HorizonSeed: 0.02,
	},
	Finke2010: {
		Name:        "Finke2010",
		Reference:   "Finke, Razzaque & Dermer (2010)",
		File:        "Finke2010.dat",
		Redshift:    standardRedshifts,
		EnergyUnit:  TeV,
		HorizonSeed: 0.02,
	},
	KneiskeDole2010: {
		Name:        "KneiskeDole2010",
		Reference:   "Kneiske & Dole (2010)",
		File:        "KNEISKEandDOLE_2010.dat",
		Redshift:    kneiskeDoleRedshifts,
		EnergyUnit:  GeV,
		HorizonSeed: 0.02,
	},
	Inoue2013: {
		Name:        "Inoue2013",
		Reference:   "Inoue et al. (2013)",
		File:        "INOUEetal_2013.dat",
		Redshift:    inoueRedshifts,
		EnergyUnit:  GeV,
		HorizonSeed: 0.01,
	},
}

// Models returns every registered identifier in ascending order.
func Models() []ModelID {
	ids := make([]ModelID, 0, len(registry))
	for id := Franceschini2008; id <= Inoue2013; id++ {
		ids = append(ids, id)
	}
	return ids
}

// Valid reports whether id is registered.
func (id ModelID) Valid() bool {
	_, ok := registry[id]
	return ok
}

// String returns the model's short name.
func (id ModelID) String() string {
	if m, ok := registry[id]; ok {
		return m.Name
	}
	return "ModelID(" + strconv.Itoa(int(id)) + ")"
}

// Lookup returns the registry entry for id. The returned redshift grid is a
// copy and may be modified by the caller.
func Lookup(id ModelID) (Metadata, error) {
	m, ok := registry[id]
	if !ok {
		return Metadata{}, fmt.Errorf("%w: %d (supported: %d-%d)", ErrUnknownModel, int(id), Franceschini2008, Inoue2013)
	}
	m.ID = id
	m.Redshift = append([]float64(nil), m.Redshift...)
	return m, nil
}

// ParseModelID accepts either the numeric identifier ("3") or the short
// name, case-insensitively ("dominguez2011").
func ParseModelID(s string) (ModelID, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		id := ModelID(n)
		if !id.Valid() {
			return 0, fmt.Errorf("%w: %d", ErrUnknownModel, n)
		}
		return id, nil
	}
	for id, m := range registry {
		if strings.EqualFold(m.Name, s) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

var kneiskeDoleRedshifts = []float64{
	0, 0.0106, 0.0109, 0.0112, 0.0116, 0.0119, 0.0123, 0.0127, 0.0131, 0.0135,
	0.0139, 0.0144, 0.0148, 0.0153, 0.0158, 0.0163, 0.0168, 0.0173, 0.0179,
	0.0184, 0.019, 0.0196, 0.0202, 0.0209, 0.0215, 0.0222, 0.0229, 0.0236,
	0.0243, 0.0251, 0.0259, 0.0267, 0.0275, 0.0284, 0.0293, 0.0302, 0.0312,
	0.0322, 0.0332, 0.0342, 0.0353, 0.0364, 0.0375, 0.0387, 0.0399, 0.0412,
	0.0425, 0.0438, 0.0452, 0.0466, 0.0481, 0.0496, 0.0512, 0.0528, 0.0544,
	0.0561, 0.0579, 0.0597, 0.0616, 0.0635, 0.0655, 0.0676, 0.0697, 0.0719,
	0.0742, 0.0765, 0.0789, 0.0814, 0.0839, 0.0866, 0.0893, 0.0921, 0.095,
	0.098, 0.1011, 0.1042, 0.1075, 0.1109, 0.1144, 0.118, 0.1217, 0.1255,
	0.1295, 0.1335, 0.1377, 0.1421, 0.1465, 0.1511, 0.1559, 0.1608, 0.1658,
	0.171, 0.1764, 0.182, 0.1877, 0.1936, 0.1997, 0.206, 0.2124, 0.2191, 0.226,
	0.2331, 0.2404, 0.248, 0.2558, 0.2638, 0.2721, 0.2807, 0.2895, 0.2986,
	0.308, 0.3176, 0.3276, 0.3379, 0.3485, 0.3595, 0.3708, 0.3825, 0.3945,
	0.4069, 0.4197, 0.4329, 0.4465, 0.4605, 0.475, 0.4899, 0.5053, 0.5212,
	0.5376, 0.5545, 0.5719, 0.5899, 0.6084, 0.6275, 0.6473, 0.6676, 0.6886,
	0.7102, 0.7326, 0.7556, 0.7793, 0.8038, 0.8291, 0.8552, 0.882, 0.9098,
	0.9384, 0.9678, 0.9983, 1.0296, 1.062, 1.0954, 1.1298, 1.1653, 1.202,
	1.2397, 1.2787, 1.3189, 1.3604, 1.4031, 1.4472, 1.4927, 1.5396, 1.588,
	1.638, 1.6894, 1.7425, 1.7973, 1.8538, 1.9121, 1.9722, 2.0342, 2.0981,
	2.1641, 2.2321, 2.3022, 2.3746, 2.4492, 2.5262, 2.6056, 2.6875, 2.772,
	2.8591, 2.949, 3.0417, 3.1373, 3.2359, 3.3377, 3.4426, 3.5508, 3.6624,
	3.7775, 3.8962, 4.0187, 4.145, 4.2753, 4.4097, 4.5483, 4.6913, 4.8387,
	4.9908,
}

var inoueRedshifts = []float64{
	0, 0.01, 0.02, 0.03, 0.04, 0.05, 0.06, 0.07, 0.08, 0.09, 0.1, 0.11, 0.15,
	0.2, 0.25, 0.3, 0.35, 0.4, 0.45, 0.5, 0.55, 0.6, 0.65, 0.7, 0.75, 0.8, 0.85,
	0.9, 0.95, 1, 1.2, 1.4, 1.6, 1.8, 2, 2.2, 2.4, 2.6, 2.8, 3, 3.2, 3.4, 3.6,
	3.8, 4, 4.2, 4.4, 4.6, 4.8, 5, 5.5, 6, 6.5, 7, 7.5, 8, 8.5, 9,
}

package synth

// Candidate tables for synthetic customer profiles. The draw order in
// Synthesize depends on these being stable: reordering or resizing a
// table changes every record derived from every seed.

var firstNames = []string{
	"Ana María", "Juan Carlos", "Patricia", "Luis Alberto", "Carolina",
	"José Manuel", "Martha Lucía", "Carlos Andrés", "María José", "Diego Alejandro",
}

var surnames = []string{
	"González", "Rodríguez", "Martínez", "López", "Sánchez",
	"Ramírez", "Torres", "Herrera", "Jiménez", "Morales",
}

var neighborhoods = []string{
	"Santa Bárbara", "Chapinero Alto", "Usaquén", "Cedritos", "La Castellana",
	"Salitre", "Teusaquillo", "Chicó", "Rosales", "Colina Campestre",
}

var customerTypes = []string{"Residencial", "Comercial"}

// months are the labels of the six-sample consumption history, in
// calendar order.
var months = []string{"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio"}

const historyYear = 2024

// tariffByStratum maps the Colombian socioeconomic stratum to the
// per-cubic-meter water tariff in COP.
var tariffByStratum = map[int]int{
	1: 2000,
	2: 2500,
	3: 3000,
	4: 3500,
	5: 4000,
	6: 4500,
}

const mailDomain = "gmail.com"

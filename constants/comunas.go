package constants

// DefaultComunas is the built-in gazetteer: canonical comuna spellings with
// their proper accents and Ñ. A run may replace it with an externally loaded
// list; the matcher derives folded forms from whichever list is active.
var DefaultComunas = []string{
	// Región Metropolitana
	"Santiago",
	"Las Condes",
	"Providencia",
	"Ñuñoa",
	"La Reina",
	"Vitacura",
	"Lo Barnechea",
	"Maipú",
	"Puente Alto",
	"San Miguel",
	"La Florida",
	"Peñalolén",
	"Macul",
	"San Joaquín",
	"Pedro Aguirre Cerda",
	"San Ramón",
	"La Cisterna",
	"La Granja",
	"El Bosque",
	"Lo Espejo",
	"La Pintana",
	"San Bernardo",
	"Calera de Tango",
	"Pirque",
	"Quilicura",
	"Huechuraba",
	"Recoleta",
	"Independencia",
	"Conchalí",
	"Renca",
	"Cerro Navia",
	"Quinta Normal",
	"Lo Prado",
	"Estación Central",
	"Cerrillos",
	"Pudahuel",
	"Padre Hurtado",
	"Melipilla",
	"Talagante",
	"Peñaflor",
	"El Monte",
	"Isla de Maipo",
	"Curacaví",
	"María Pinto",
	"San Pedro",
	"Alhué",
	"Colina",
	"Buin",
	"Paine",
	// Valparaíso
	"Valparaíso",
	"Viña del Mar",
	"Concón",
	"Quilpué",
	"Villa Alemana",
	"Limache",
	"Olmué",
	"Quillota",
	"La Calera",
	"Hijuelas",
	"La Cruz",
	"Nogales",
	"San Antonio",
	"Cartagena",
	"El Tabo",
	"El Quisco",
	"Algarrobo",
	"Santo Domingo",
	// O'Higgins
	"Rancagua",
	"Machalí",
	"Graneros",
	"Codegua",
	"Requínoa",
	"Rengo",
	"Olivar",
	"Doñihue",
	"Coltauco",
	"Coinco",
	"Peumo",
	"Pichidegua",
	"San Vicente",
	"Navidad",
	"Litueche",
	"La Estrella",
	"Marchihue",
	"Paredones",
	"Pichilemu",
	// Biobío y Ñuble
	"Concepción",
	"Coronel",
	"Talcahuano",
	"Chiguayante",
	"Hualpén",
	"Penco",
	"Lota",
	"Tomé",
	"Cañete",
	"Chillán",
	// resto del país
	"Arica",
	"Iquique",
	"Antofagasta",
	"Calama",
	"Copiapó",
	"La Serena",
	"Coquimbo",
	"Illapel",
	"Curicó",
	"Talca",
	"Linares",
	"Temuco",
	"Valdivia",
	"Osorno",
	"Puerto Montt",
	"Puerto Varas",
	"Puerto Aysén",
	"Punta Arenas",
}

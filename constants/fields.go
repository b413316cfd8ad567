package constants

import "strings"

// Field is one canonical output column. Every bank-specific extraction maps
// into this fixed schema; the column order below matches the base workbook.
type Field string

const (
	FieldOperacion         Field = "OPERACION_1"
	FieldRUT               Field = "RUT"
	FieldDV                Field = "DV"
	FieldNombre            Field = "NOMBRE"
	FieldDireccion         Field = "DIRECCION"
	FieldComuna            Field = "COMUNA"
	FieldFechaSuscripcion  Field = "FECHA_SUSCRIPCION_1"
	FieldMontoCredito      Field = "MONTO_CREDITO_1"
	FieldCuotas            Field = "CUOTAS_1"
	FieldTasa              Field = "TASA_1"
	FieldMontoCuota        Field = "MONTO_CUOTA_1"
	FieldMontoUltimaCuota  Field = "MONTO_ULTIMA_CUOTA_1"
	FieldFechaVenc1Cuota   Field = "FECHA_VENCIMIENTO_1_CUOTA_1"
	FieldFechaVencUltima   Field = "FECHA_VENCIMIENTO_ULTIMA_CUOTA_1"
	FieldCuotaMorosa       Field = "CUOTA_MOROSA_1"
	FieldFechaCuotaMorosa  Field = "FECHA_CUOTA_MOROSA_1"
	FieldCapital           Field = "CAPITAL_1"
	FieldExhorto           Field = "EXHORTO"
	FieldSucursal          Field = "SUCURSAL"
	FieldProducto          Field = "PRODUCTO"
	FieldNombreApoderado   Field = "NOMBRE_APODERADO"
	FieldNombreApoderado2  Field = "NOMBRE_APODERADO_2"
)

// CanonicalFields is the full schema in output column order.
var CanonicalFields = []Field{
	FieldOperacion,
	FieldRUT,
	FieldDV,
	FieldNombre,
	FieldDireccion,
	FieldComuna,
	FieldFechaSuscripcion,
	FieldMontoCredito,
	FieldCuotas,
	FieldTasa,
	FieldMontoCuota,
	FieldMontoUltimaCuota,
	FieldFechaVenc1Cuota,
	FieldFechaVencUltima,
	FieldCuotaMorosa,
	FieldFechaCuotaMorosa,
	FieldCapital,
	FieldExhorto,
	FieldSucursal,
	FieldProducto,
	FieldNombreApoderado,
	FieldNombreApoderado2,
}

// ValueKind governs which normalization and validation rules apply to a field.
type ValueKind string

const (
	KindText       ValueKind = "TEXT"       // names, addresses, comuna strings
	KindIdentifier ValueKind = "IDENTIFIER" // RUT body, check digit, operation number
	KindMoney      ValueKind = "MONEY"      // Chilean pesos, thousands-dot formatted
	KindInteger    ValueKind = "INTEGER"
	KindRate       ValueKind = "RATE"
	KindDate       ValueKind = "DATE" // normalized to DD-MM-YYYY
)

var fieldKinds = map[Field]ValueKind{
	FieldOperacion:        KindIdentifier,
	FieldRUT:              KindIdentifier,
	FieldDV:               KindIdentifier,
	FieldNombre:           KindText,
	FieldDireccion:        KindText,
	FieldComuna:           KindText,
	FieldFechaSuscripcion: KindDate,
	FieldMontoCredito:     KindMoney,
	FieldCuotas:           KindInteger,
	FieldTasa:             KindRate,
	FieldMontoCuota:       KindMoney,
	FieldMontoUltimaCuota: KindMoney,
	FieldFechaVenc1Cuota:  KindDate,
	FieldFechaVencUltima:  KindDate,
	FieldCuotaMorosa:      KindInteger,
	FieldFechaCuotaMorosa: KindDate,
	FieldCapital:          KindMoney,
	FieldExhorto:          KindText,
	FieldSucursal:         KindText,
	FieldProducto:         KindText,
	FieldNombreApoderado:  KindText,
	FieldNombreApoderado2: KindText,
}

// Kind returns the value kind for f, defaulting to text for unknown fields.
func (f Field) Kind() ValueKind {
	if k, ok := fieldKinds[f]; ok {
		return k
	}
	return KindText
}

// IsCanonical reports whether s names a field of the canonical schema.
func IsCanonical(s string) bool {
	_, ok := fieldKinds[Field(s)]
	return ok
}

// ParseField resolves a raw header name to its canonical field, consulting
// the alias table. The bool result is false when nothing matches.
func ParseField(s string) (Field, bool) {
	if IsCanonical(s) {
		return Field(s), true
	}
	key := strings.ToLower(strings.TrimSpace(s))
	if f, ok := HeaderAliases[key]; ok {
		return f, true
	}
	return "", false
}

// HeaderAliases maps lower-cased header variants seen in source material to
// their canonical field. Downstream consumers may also request record values
// under any of these names.
var HeaderAliases = map[string]Field{
	// operación
	"operacion":        FieldOperacion,
	"numero_operacion": FieldOperacion,
	"num_operacion":    FieldOperacion,
	"op":               FieldOperacion,

	// rut
	"rut_cliente": FieldRUT,
	"rutcliente":  FieldRUT,
	"rut cliente": FieldRUT,
	"cedula":      FieldRUT,

	"digito_verificador": FieldDV,
	"dv":                 FieldDV,

	// nombre
	"nombre_completo": FieldNombre,
	"nombre completo": FieldNombre,
	"nombres":         FieldNombre,
	"apellidos":       FieldNombre,
	"razon social":    FieldNombre,
	"deudor":          FieldNombre,
	"cliente":         FieldNombre,

	// dirección
	"direccion":            FieldDireccion,
	"domicilio":            FieldDireccion,
	"domicilio particular": FieldDireccion,

	// comuna
	"ciudad":    FieldComuna,
	"localidad": FieldComuna,

	// fechas
	"fecha_suscripcion":         FieldFechaSuscripcion,
	"fecha suscripcion":         FieldFechaSuscripcion,
	"fecha_contrato":            FieldFechaSuscripcion,
	"fecha_firma":               FieldFechaSuscripcion,
	"fecha_primera_cuota":       FieldFechaVenc1Cuota,
	"fecha_vencimiento_primera": FieldFechaVenc1Cuota,
	"fpv":                       FieldFechaVenc1Cuota,
	"fecha_ultima_cuota":        FieldFechaVencUltima,
	"fecha_vencimiento_ultima":  FieldFechaVencUltima,
	"fuv":                       FieldFechaVencUltima,

	// montos
	"monto":              FieldMontoCredito,
	"monto_credito":      FieldMontoCredito,
	"monto credito":      FieldMontoCredito,
	"valor credito":      FieldMontoCredito,
	"importe":            FieldMontoCredito,
	"monto_cuota":        FieldMontoCuota,
	"cuota_mensual":      FieldMontoCuota,
	"valor_cuota":        FieldMontoCuota,
	"mpc":                FieldMontoCuota,
	"monto_ultima_cuota": FieldMontoUltimaCuota,
	"ultima_cuota":       FieldMontoUltimaCuota,
	"muc":                FieldMontoUltimaCuota,

	// cuotas / tasa
	"cuotas":        FieldCuotas,
	"numero cuotas": FieldCuotas,
	"num_cuotas":    FieldCuotas,
	"plazo":         FieldCuotas,
	"plazo_meses":   FieldCuotas,
	"tasa":          FieldTasa,
	"tasa_interes":  FieldTasa,
	"tasa anual":    FieldTasa,
	"interes":       FieldTasa,

	// capital
	"capital":          FieldCapital,
	"capital_insoluto": FieldCapital,
	"saldo_capital":    FieldCapital,

	// varios
	"exhorto":         FieldExhorto,
	"tribunal":        FieldExhorto,
	"juzgado":         FieldExhorto,
	"oficina":         FieldSucursal,
	"agencia":         FieldSucursal,
	"codigo_producto": FieldProducto,
	"tipo_credito":    FieldProducto,
	"tipo_producto":   FieldProducto,
	"apoderado_1":     FieldNombreApoderado,
	"apoderado 1":     FieldNombreApoderado,
	"apoderado_2":     FieldNombreApoderado2,
	"apoderado 2":     FieldNombreApoderado2,
}

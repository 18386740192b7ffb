package constants

// Operator is the canonical name of a reporting operator.
type Operator string

// Stable values (store these exact strings in DB).
const (
	OperatorYPF        Operator = "YPF S.A."
	OperatorPluspetrol Operator = "Pluspetrol S.A."
	OperatorPetSud     Operator = "Petróleos Sudamericanos"
	OperatorAconcagua  Operator = "Aconcagua Energía"
	OperatorPCR        Operator = "PCR"
)

// Operators holds the closed set of known operators.
var Operators = []Operator{
	OperatorYPF,
	OperatorPluspetrol,
	OperatorPetSud,
	OperatorAconcagua,
	OperatorPCR,
}

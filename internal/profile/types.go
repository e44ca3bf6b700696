package profile

const (
	MaxNameLength  = 100
	MaxPhoneLength = 30
	ConfirmPhrase  = "DELETE"
)

type UpdateInput struct {
	FirstName string
	LastName  string
	Phone     string
}

type DeleteAccountInput struct {
	Confirm string
}

type DeleteAccountOutput struct {
	CasesDeleted   int
	ObjectsRemoved int
}

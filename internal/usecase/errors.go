package usecase

// DomainError: erro de negócio/entrada (vira 400 na borda HTTP).
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	_, ok := err.(*DomainError)
	return ok
}

// TechnicalError: falha de infraestrutura (vira 500 na borda HTTP).
type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

// IntegrationResult é o desfecho tipado de uma integração best-effort.
// Ou tem um ID do provedor, ou tem o erro — nunca "nil significando falha".
type IntegrationResult struct {
	ID  string
	Err error
}

func (r IntegrationResult) OK() bool {
	return r.Err == nil && r.ID != ""
}

// IDOrNil devolve o ponteiro que a resposta JSON espera: id quando deu
// certo, null quando a integração falhou ou foi pulada.
func (r IntegrationResult) IDOrNil() *string {
	if !r.OK() {
		return nil
	}
	id := r.ID
	return &id
}

package unit

import (
	"log"

	"github.com/NadilaEriani/posbankum/internal/domain"
)

// Handler serves the admin unit directory. Creating a unit also
// provisions its owner account, so the handler carries the hasher.
type Handler struct {
	Log      *log.Logger
	Units    domain.UnitsRepo
	Accounts domain.AccountsRepo
	Hasher   domain.PasswordHasher
	Cache    domain.Cache
}

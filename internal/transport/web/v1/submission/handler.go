package submission

import (
	"fmt"
	"log"
	"time"

	"github.com/NadilaEriani/posbankum/internal/domain"
	"github.com/NadilaEriani/posbankum/internal/verify"
)

type Handler struct {
	Log     *log.Logger
	Units   domain.UnitsRepo
	Subs    domain.SubmissionsRepo
	Storage domain.BlobStorage
	Cache   domain.Cache
	Norm    *verify.Normalizer
	Access  *verify.AccessResolver
}

// objectKey builds the storage key: <unit>/<category>/<unixms>_<name>.
// Keys never collide across resubmits because the millisecond stamp
// moves forward.
func objectKey(unitID domain.UnitID, cat domain.Category, fileName string, now time.Time) string {
	return fmt.Sprintf("%s/%s/%d_%s", unitID, cat, now.UnixMilli(), domain.SafeFileName(fileName))
}

// canManage reports whether the account may touch submissions of unitID.
func canManage(a domain.Account, unitID domain.UnitID) bool {
	if a.Role == domain.RoleAdmin {
		return true
	}
	return a.UnitID != nil && *a.UnitID == unitID
}

package web

import "github.com/NadilaEriani/posbankum/internal/domain"

type Repos struct {
	Units    domain.UnitsRepo
	Subs     domain.SubmissionsRepo
	Regions  domain.RegionsRepo
	Accounts domain.AccountsRepo
}

type AuthDeps struct {
	Hasher    domain.PasswordHasher
	Tokens    domain.TokenManager
	Blacklist domain.TokenBlacklist
}

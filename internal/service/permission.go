package service

// MutationPolicy решает, разрешены ли изменяющие операции (update/delete)
// в текущем окружении. Внедряется в сервис, чтобы политику можно было
// настраивать на развертывание и подменять в тестах.
type MutationPolicy interface {
	CanMutate() bool
}

// EnvMutationPolicy запрещает мутации в production-окружении
type EnvMutationPolicy struct {
	allowed bool
}

func NewEnvMutationPolicy(env string) *EnvMutationPolicy {
	return &EnvMutationPolicy{allowed: env != "production"}
}

func (p *EnvMutationPolicy) CanMutate() bool {
	return p.allowed
}

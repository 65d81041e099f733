package auth

import "github.com/qatth/careerscan/internal/types"

// FeatureAccess maps feature names to the plans allowed to use them.
type FeatureAccess map[string]map[types.Plan]bool

// DefaultFeatureAccess returns the fixed access table. The scanner,
// builder, jobs and recharge surfaces are open to every plan; the
// chatbot needs at least medium; the mock interview needs pro.
func DefaultFeatureAccess() FeatureAccess {
	return FeatureAccess{
		"cv-scanner": {types.PlanFree: true, types.PlanMedium: true, types.PlanPro: true},
		"cv-builder": {types.PlanFree: true, types.PlanMedium: true, types.PlanPro: true},
		"chatbot":    {types.PlanFree: false, types.PlanMedium: true, types.PlanPro: true},
		"interview":  {types.PlanFree: false, types.PlanMedium: false, types.PlanPro: true},
		"jobs":       {types.PlanFree: true, types.PlanMedium: true, types.PlanPro: true},
		"recharge":   {types.PlanFree: true, types.PlanMedium: true, types.PlanPro: true},
	}
}

// CanAccess reports whether a plan may use a feature. Unknown features
// and unknown plans fail closed.
func (f FeatureAccess) CanAccess(feature string, plan types.Plan) bool {
	plans, ok := f[feature]
	if !ok {
		return false
	}
	return plans[plan]
}

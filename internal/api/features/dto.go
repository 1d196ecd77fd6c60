package features

type FeatureListResponse struct {
	DeptCode           string          `json:"dept_code"`
	GlobalFeatures     []FeatureRowDTO `json:"global_features"`
	DepartmentFeatures []FeatureRowDTO `json:"department_features"`
}

type FeatureRowDTO struct {
	ID           uint   `json:"id"`
	Abbreviation string `json:"abbreviation"`
	Label        string `json:"label"`
	TypeLabel    string `json:"type_label,omitempty"`
}

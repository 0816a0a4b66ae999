package scale

// fileSchema is the top-level HCL layout of a scale configuration file.
type fileSchema struct {
	Scale *scaleSchema `hcl:"scale,block"`
}

// scaleSchema mirrors the `scale` block. Pointer fields distinguish absent
// attributes from zero values so defaults survive partial files.
type scaleSchema struct {
	MaxGrade   *float64        `hcl:"max_grade,optional"`
	GradeCount *int            `hcl:"grade_count,optional"`
	Epsilon    *float64        `hcl:"epsilon,optional"`
	Messages   *messagesSchema `hcl:"messages,block"`
}

// messagesSchema mirrors the optional `messages` block inside `scale`.
type messagesSchema struct {
	Higher *string `hcl:"higher,optional"`
	Lower  *string `hcl:"lower,optional"`
	Even   *string `hcl:"even,optional"`
}

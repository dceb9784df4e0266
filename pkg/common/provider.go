package common

// Provider identifies an object-storage control plane.
type Provider string

const (
	AWS Provider = "aws"
	GCP Provider = "gcp"
)

func (p Provider) String() string {
	return string(p)
}

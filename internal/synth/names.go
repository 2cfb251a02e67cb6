package synth

import (
	"strings"

	"k8s.io/apimachinery/pkg/util/validation"

	"github.com/Efficient-Computing-Lab/CADO/internal/diag"
)

func checkSubdomain(rep *diag.Reporter, kind, name string) {
	if errs := validation.IsDNS1123Subdomain(name); len(errs) > 0 {
		rep.Warnf(name, "invalid %s name: %s", kind, strings.Join(errs, "; "))
	}
}

func checkLabel(rep *diag.Reporter, kind, name string) {
	if errs := validation.IsDNS1123Label(name); len(errs) > 0 {
		rep.Warnf(name, "invalid %s name: %s", kind, strings.Join(errs, "; "))
	}
}

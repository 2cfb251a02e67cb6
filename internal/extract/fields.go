package extract

import "strings"

// Field is a well-known property the synthesis engine understands.
type Field string

const (
	FieldDeploymentName Field = "deployment_name"
	FieldContainerName  Field = "container_name"
	FieldImage          Field = "related_image"
	FieldNamespace      Field = "related_namespace"
	FieldReplicas       Field = "replicas"
	FieldMountPath      Field = "volume_mount_path"
	FieldVolumeName     Field = "volume_name"
	FieldHostPath       Field = "volume_host_path"
	FieldStorage        Field = "reserved_storage"
	FieldVolumes        Field = "volumes"
	FieldNetworks       Field = "networks"
	FieldRestart        Field = "restart_policy"
	FieldPorts          Field = "ports"
)

// EnvPrefix marks properties that become environment variables.
const EnvPrefix = "env_"

// knownFields maps lower-cased property names, canonical and alias, to fields.
var knownFields = map[string]Field{
	"deployment_name":   FieldDeploymentName,
	"container_name":    FieldContainerName,
	"related_image":     FieldImage,
	"image":             FieldImage,
	"related_namespace": FieldNamespace,
	"namespace":         FieldNamespace,
	"replicas":          FieldReplicas,
	"volume_mount_path": FieldMountPath,
	"mount_path":        FieldMountPath,
	"volume_name":       FieldVolumeName,
	"volume_host_path":  FieldHostPath,
	"host_path":         FieldHostPath,
	"reserved_storage":  FieldStorage,
	"storage":           FieldStorage,
	"capacity":          FieldStorage,
	"volumes":           FieldVolumes,
	"networks":          FieldNetworks,
	"restart_policy":    FieldRestart,
	"restart":           FieldRestart,
	"ports":             FieldPorts,
}

var multiValued = map[Field]bool{
	FieldMountPath: true,
	FieldVolumes:   true,
	FieldNetworks:  true,
	FieldPorts:     true,
}

// LookupField returns the field a property name feeds, if any.
func LookupField(property string) (Field, bool) {
	f, ok := knownFields[strings.ToLower(property)]
	return f, ok
}

// IsMultiValued reports whether f keeps every asserted literal.
func IsMultiValued(f Field) bool {
	return multiValued[f]
}

// EnvKey derives the environment variable name from a prefixed property
// name: the prefix is stripped and the rest upper-cased.
func EnvKey(property string) (string, bool) {
	if len(property) <= len(EnvPrefix) || !strings.EqualFold(property[:len(EnvPrefix)], EnvPrefix) {
		return "", false
	}
	return strings.ToUpper(property[len(EnvPrefix):]), true
}

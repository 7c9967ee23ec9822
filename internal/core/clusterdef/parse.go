package clusterdef

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseJSON 解析 JSON 形式的集群定义, 不做校验
func ParseJSON(data []byte) (*ClusterDefinition, error) {
	var def ClusterDefinition
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parse cluster definition: %w", err)
	}
	return &def, nil
}

// ParseYAML 解析 YAML 形式的集群定义, 价格按十进制文本解析
func ParseYAML(data []byte) (*ClusterDefinition, error) {
	var def ClusterDefinition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return nil, fmt.Errorf("parse cluster definition: %w", err)
	}
	return &def, nil
}

// Package docs Swagger 文档, 由 swag init -g cmd/data-catalog/main.go 更新
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "用户登录",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/auth/refresh": {
            "post": {
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "刷新访问Token",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/auth/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["认证"],
                "summary": "获取当前用户",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/storages": {
            "get": {
                "produces": ["application/json"],
                "tags": ["存储"],
                "summary": "获取存储列表",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["存储"],
                "summary": "创建存储",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/storages/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["存储"],
                "summary": "获取存储",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/partition-key-groups": {
            "post": {
                "produces": ["application/json"],
                "tags": ["分区键组"],
                "summary": "创建分区键组",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/partition-key-groups/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["分区键组"],
                "summary": "获取分区键组",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["分区键组"],
                "summary": "删除分区键组",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/partition-key-groups/{name}/expected-partition-values": {
            "get": {
                "produces": ["application/json"],
                "tags": ["分区键组"],
                "summary": "查询预期分区值",
                "parameters": [
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/expected-partition-values": {
            "post": {
                "produces": ["application/json"],
                "tags": ["分区键组"],
                "summary": "添加预期分区值",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/expected-partition-values/delete": {
            "post": {
                "produces": ["application/json"],
                "tags": ["分区键组"],
                "summary": "删除预期分区值",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/formats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["业务对象格式"],
                "summary": "获取业务对象格式",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["业务对象格式"],
                "summary": "创建业务对象格式",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/business-object-data": {
            "get": {
                "produces": ["application/json"],
                "tags": ["业务对象数据"],
                "summary": "获取业务对象数据",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["业务对象数据"],
                "summary": "登记业务对象数据",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/business-object-data/status": {
            "put": {
                "produces": ["application/json"],
                "tags": ["业务对象数据"],
                "summary": "更新业务对象数据状态",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/business-object-data/availability": {
            "post": {
                "produces": ["application/json"],
                "tags": ["业务对象数据"],
                "summary": "检查分区数据可用性",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/tag-types": {
            "get": {
                "produces": ["application/json"],
                "tags": ["标签"],
                "summary": "获取标签类型列表",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            },
            "post": {
                "produces": ["application/json"],
                "tags": ["标签"],
                "summary": "创建标签类型",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/tag-types/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["标签"],
                "summary": "获取标签类型",
                "parameters": [
                    {"type": "string", "name": "code", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/tag-types/{code}/tags": {
            "get": {
                "produces": ["application/json"],
                "tags": ["标签"],
                "summary": "获取标签列表",
                "parameters": [
                    {"type": "string", "name": "code", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/tag-types/{code}/tags/{tagCode}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["标签"],
                "summary": "获取标签",
                "parameters": [
                    {"type": "string", "name": "code", "in": "path", "required": true},
                    {"type": "string", "name": "tagCode", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/tags": {
            "post": {
                "produces": ["application/json"],
                "tags": ["标签"],
                "summary": "创建标签",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/storage-policy-rule-types": {
            "post": {
                "produces": ["application/json"],
                "tags": ["存储策略"],
                "summary": "创建存储策略规则类型",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/storage-policy-rule-types/{code}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["存储策略"],
                "summary": "获取存储策略规则类型",
                "parameters": [
                    {"type": "string", "name": "code", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/emr-cluster-definitions": {
            "post": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "创建EMR集群定义",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            },
            "put": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "更新EMR集群定义",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/emr-cluster-definitions/validate": {
            "post": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "校验EMR集群定义",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/emr-cluster-definitions/{namespace}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "获取EMR集群定义列表",
                "parameters": [
                    {"type": "string", "name": "namespace", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/emr-cluster-definitions/{namespace}/{name}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "获取EMR集群定义",
                "parameters": [
                    {"type": "string", "name": "namespace", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "删除EMR集群定义",
                "parameters": [
                    {"type": "string", "name": "namespace", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/emr-cluster-definitions/{namespace}/{name}/yaml": {
            "put": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "导入EMR集群定义(YAML)",
                "parameters": [
                    {"type": "string", "name": "namespace", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/emr-cluster-definitions/{namespace}/{name}/clusters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "获取集群创建记录",
                "parameters": [
                    {"type": "string", "name": "namespace", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/emr-clusters": {
            "post": {
                "produces": ["application/json"],
                "tags": ["EMR"],
                "summary": "创建EMR集群",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        },
        "/notifications/publish": {
            "post": {
                "produces": ["application/json"],
                "tags": ["通知"],
                "summary": "发送待发送通知",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.Response"}}}
            }
        }
    },
    "definitions": {
        "responses.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "detail": {"type": "string"},
                "data": {}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Data Catalog API",
	Description:      "数据目录服务: 业务对象格式与数据登记, 分区可用性检查, EMR集群定义与创建",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

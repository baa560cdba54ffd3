// Package docs holds the OpenAPI document for the API and registers it with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/courses": {
            "get": {
                "description": "Retrieves a list of all courses",
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get all courses",
                "responses": {
                    "200": {
                        "description": "Courses retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/dto.CourseResponse"}}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Creates a new course with a generated ID",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Create a new course",
                "parameters": [
                    {"description": "Course information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateCourseRequest"}}
                ],
                "responses": {
                    "201": {
                        "description": "Course created successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.CourseResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "description": "Retrieves a specific course by its ID",
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Get course details",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Course retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.CourseResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid course ID format", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Replaces the title and description of an existing course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["courses"],
                "summary": "Update a course",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Course ID", "name": "id", "in": "path", "required": true},
                    {"description": "Updated course information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.UpdateCourseRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "Course updated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.CourseResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "Deletes a course. Enrolments referencing it are kept.",
                "tags": ["courses"],
                "summary": "Delete a course",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Course ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "Course deleted successfully"},
                    "400": {"description": "Invalid course ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/students": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get all students",
                "responses": {
                    "200": {
                        "description": "Students retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/dto.StudentResponse"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/students/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Get a student",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Student retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.StudentResponse"}}}
                            ]
                        }
                    },
                    "404": {"description": "Student not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/enrolments": {
            "get": {
                "description": "Lists enrolments with student names and course titles. courseId takes precedence over studentId.",
                "produces": ["application/json"],
                "tags": ["enrolments"],
                "summary": "List enrolments",
                "parameters": [
                    {"type": "string", "format": "uuid", "description": "Filter by course ID", "name": "courseId", "in": "query"},
                    {"type": "string", "description": "Filter by student ID", "name": "studentId", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "Enrolments retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/dto.EnrolmentResponse"}}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid course ID", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Enrols a student in a course. Fails with 404 when the student or course does not exist and 409 when already enrolled.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["enrolments"],
                "summary": "Create an enrolment",
                "parameters": [
                    {"description": "Enrolment information", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.CreateEnrolmentRequest"}}
                ],
                "responses": {
                    "201": {
                        "description": "Enrolment created successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/dto.EnrolmentResponse"}}}
                            ]
                        }
                    },
                    "400": {"description": "Invalid request data", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Student or course not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "409": {"description": "Student already enrolled", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["enrolments"],
                "summary": "Delete an enrolment",
                "parameters": [
                    {"type": "string", "description": "Student ID", "name": "studentId", "in": "query", "required": true},
                    {"type": "string", "format": "uuid", "description": "Course ID", "name": "courseId", "in": "query", "required": true}
                ],
                "responses": {
                    "204": {"description": "Enrolment deleted successfully"},
                    "400": {"description": "Missing or invalid parameters", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}},
                    "404": {"description": "Enrolment not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/reports/enrolments-summary": {
            "get": {
                "description": "One row per course with the number of distinct enrolled students, sorted by title",
                "produces": ["application/json"],
                "tags": ["reports"],
                "summary": "Enrolment summary",
                "responses": {
                    "200": {
                        "description": "Summary generated successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/dto.ReportRowResponse"}}}}
                            ]
                        }
                    }
                }
            }
        },
        "/course-details": {
            "get": {
                "produces": ["application/json"],
                "tags": ["course-details"],
                "summary": "Get all course details",
                "responses": {
                    "200": {
                        "description": "Course details retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/models.CourseDetail"}}}}
                            ]
                        }
                    },
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        },
        "/course-details/{courseId}": {
            "get": {
                "description": "Instructor, syllabus, requirements and other details of a course",
                "produces": ["application/json"],
                "tags": ["course-details"],
                "summary": "Get course detail",
                "parameters": [
                    {"type": "string", "description": "Course ID", "name": "courseId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "Course detail retrieved successfully",
                        "schema": {
                            "allOf": [
                                {"$ref": "#/definitions/dto.APIResponse"},
                                {"type": "object", "properties": {"data": {"$ref": "#/definitions/models.CourseDetail"}}}
                            ]
                        }
                    },
                    "404": {"description": "Course details not found", "schema": {"$ref": "#/definitions/dto.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "dto.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "success": {"type": "boolean", "example": true},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.ErrorDetail": {
            "type": "object",
            "properties": {
                "code": {"type": "string", "example": "RES_001"},
                "details": {},
                "field": {"type": "string", "example": "title"},
                "message": {"type": "string", "example": "Course with ID 11111111-1111-1111-1111-111111111111 not found"},
                "severity": {"type": "string", "example": "ERROR"}
            }
        },
        "dto.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/dto.ErrorDetail"},
                "success": {"type": "boolean", "example": false},
                "timestamp": {"type": "string", "example": "2025-04-23T12:01:05.123Z"}
            }
        },
        "dto.CourseResponse": {
            "type": "object",
            "properties": {
                "description": {"type": "string", "example": "Learn the fundamentals of React"},
                "id": {"type": "string", "example": "11111111-1111-1111-1111-111111111111"},
                "title": {"type": "string", "example": "Introduction to React"}
            }
        },
        "dto.CreateCourseRequest": {
            "type": "object",
            "required": ["description", "title"],
            "properties": {
                "description": {"type": "string", "minLength": 5, "example": "Learn the fundamentals of React"},
                "title": {"type": "string", "minLength": 2, "example": "Introduction to React"}
            }
        },
        "dto.UpdateCourseRequest": {
            "type": "object",
            "required": ["description", "title"],
            "properties": {
                "description": {"type": "string", "minLength": 5, "example": "Learn the fundamentals of React"},
                "title": {"type": "string", "minLength": 2, "example": "Introduction to React"}
            }
        },
        "dto.StudentResponse": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "alice@example.com"},
                "fullName": {"type": "string", "example": "Alice Johnson"},
                "id": {"type": "string", "example": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"}
            }
        },
        "dto.CreateEnrolmentRequest": {
            "type": "object",
            "required": ["courseId", "studentId"],
            "properties": {
                "courseId": {"type": "string", "example": "11111111-1111-1111-1111-111111111111"},
                "studentId": {"type": "string", "example": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"}
            }
        },
        "dto.EnrolmentResponse": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string", "example": "11111111-1111-1111-1111-111111111111"},
                "courseTitle": {"type": "string", "example": "Introduction to React"},
                "enrolledAt": {"type": "string", "example": "2025-04-23T12:01:05Z"},
                "studentId": {"type": "string", "example": "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"},
                "studentName": {"type": "string", "example": "Alice Johnson"}
            }
        },
        "dto.ReportRowResponse": {
            "type": "object",
            "properties": {
                "courseId": {"type": "string", "example": "11111111-1111-1111-1111-111111111111"},
                "courseTitle": {"type": "string", "example": "Introduction to React"},
                "totalStudents": {"type": "integer", "example": 12}
            }
        },
        "models.CourseDetail": {
            "type": "object",
            "properties": {
                "category": {"type": "string"},
                "courseId": {"type": "string"},
                "createdAt": {"type": "string"},
                "durationHours": {"type": "integer"},
                "instructor": {"$ref": "#/definitions/models.Instructor"},
                "language": {"type": "string"},
                "lastUpdated": {"type": "string"},
                "level": {"type": "string"},
                "requirements": {"type": "array", "items": {"type": "string"}},
                "syllabus": {"type": "array", "items": {"$ref": "#/definitions/models.SyllabusSection"}},
                "whatYouWillLearn": {"type": "array", "items": {"type": "string"}}
            }
        },
        "models.Instructor": {
            "type": "object",
            "properties": {
                "avatar": {"type": "string"},
                "bio": {"type": "string"},
                "name": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "models.SyllabusSection": {
            "type": "object",
            "properties": {
                "durationMinutes": {"type": "integer"},
                "lectures": {"type": "integer"},
                "title": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "Mini LMS API",
	Description:      "API for managing courses, students, and enrolments in a Mini LMS",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

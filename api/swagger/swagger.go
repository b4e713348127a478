package swagger

import "github.com/swaggo/swag"

// docTemplate is maintained by hand alongside the handler annotations.
const docTemplate = `{
    "swagger": "2.0",
    "info": {"title": "School Records API", "description": "Students, teachers, classes, enrollments, attendance, grades, events and the activity log.", "version": "1.0.0"},
    "basePath": "/",
    "schemes": ["http"],
    "tags": [
        {"name": "Authentication"},
        {"name": "Users"},
        {"name": "Students"},
        {"name": "Teachers"},
        {"name": "Classes"},
        {"name": "Enrollments"},
        {"name": "Attendance"},
        {"name": "Grades"},
        {"name": "Events"},
        {"name": "Dashboard"},
        {"name": "Exports"}
    ],
    "paths": {
        "/health": {
            "get": {"summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"summary": "Readiness check of the store and cache", "responses": {"200": {"description": "Ready"}, "503": {"description": "A dependency is unavailable"}}}
        },
        "/metrics": {
            "get": {"summary": "Prometheus metrics", "produces": ["text/plain"], "responses": {"200": {"description": "OK"}}}
        },
        "/api/auth/login": {
            "post": {"tags": ["Authentication"], "summary": "Authenticate user", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}], "responses": {"200": {"description": "User info and optional access token", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "401": {"description": "Invalid username or password", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/users": {
            "get": {"tags": ["Users"], "summary": "List users", "parameters": [], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Users"], "summary": "Create user", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/users/{id}": {
            "get": {"tags": ["Users"], "summary": "Get user", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Users"], "summary": "Update user", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Users"], "summary": "Delete user", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/students": {
            "get": {"tags": ["Students"], "summary": "List students", "parameters": [], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Students"], "summary": "Create student", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateStudentRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/students/import": {
            "post": {"tags": ["Students"], "summary": "Import students from an xlsx workbook", "consumes": ["multipart/form-data"], "parameters": [{"name": "file", "in": "formData", "required": true, "type": "file"}], "responses": {"200": {"description": "Import result", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Unreadable workbook", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/students/{id}": {
            "get": {"tags": ["Students"], "summary": "Get student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Students"], "summary": "Update student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStudentRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Students"], "summary": "Delete student", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/teachers": {
            "get": {"tags": ["Teachers"], "summary": "List teachers", "parameters": [], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Teachers"], "summary": "Create teacher", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTeacherRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/teachers/{id}": {
            "get": {"tags": ["Teachers"], "summary": "Get teacher", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Teachers"], "summary": "Update teacher", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateTeacherRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Teachers"], "summary": "Delete teacher", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/classes": {
            "get": {"tags": ["Classes"], "summary": "List classes", "parameters": [], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Classes"], "summary": "Create class", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateClassRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/classes/{id}": {
            "get": {"tags": ["Classes"], "summary": "Get class", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Classes"], "summary": "Update class", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateClassRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Classes"], "summary": "Delete class", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/enrollments": {
            "get": {"tags": ["Enrollments"], "summary": "List enrollments", "parameters": [{"name": "classId", "in": "query", "type": "integer", "required": false}, {"name": "studentId", "in": "query", "type": "integer", "required": false}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Enrollments"], "summary": "Create enrollment", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEnrollmentRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/enrollments/{id}": {
            "get": {"tags": ["Enrollments"], "summary": "Get enrollment", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Enrollments"], "summary": "Update enrollment", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEnrollmentRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Enrollments"], "summary": "Delete enrollment", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/attendance": {
            "get": {"tags": ["Attendance"], "summary": "List attendance", "parameters": [{"name": "classId", "in": "query", "type": "integer", "required": false}, {"name": "studentId", "in": "query", "type": "integer", "required": false}, {"name": "date", "in": "query", "type": "string", "required": false}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Attendance"], "summary": "Create attendance", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAttendanceRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/attendance/summary": {
            "get": {"tags": ["Attendance"], "summary": "Summarise attendance", "parameters": [{"name": "classId", "in": "query", "type": "integer", "required": false}, {"name": "studentId", "in": "query", "type": "integer", "required": false}, {"name": "date", "in": "query", "type": "string", "required": false}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/attendance/{id}": {
            "get": {"tags": ["Attendance"], "summary": "Get attendance", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Attendance"], "summary": "Update attendance", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateAttendanceRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Attendance"], "summary": "Delete attendance", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/grades": {
            "get": {"tags": ["Grades"], "summary": "List grades", "parameters": [{"name": "classId", "in": "query", "type": "integer", "required": false}, {"name": "studentId", "in": "query", "type": "integer", "required": false}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Grades"], "summary": "Create grade", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateGradeRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/grades/summary": {
            "get": {"tags": ["Grades"], "summary": "Summarise grades", "parameters": [{"name": "classId", "in": "query", "type": "integer", "required": false}, {"name": "studentId", "in": "query", "type": "integer", "required": false}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/grades/{id}": {
            "get": {"tags": ["Grades"], "summary": "Get grade", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Grades"], "summary": "Update grade", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateGradeRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Grades"], "summary": "Delete grade", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/events": {
            "get": {"tags": ["Events"], "summary": "List events", "parameters": [], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid filter", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "post": {"tags": ["Events"], "summary": "Create event", "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEventRequest"}}], "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/events/{id}": {
            "get": {"tags": ["Events"], "summary": "Get event", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "put": {"tags": ["Events"], "summary": "Update event", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}, {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateEventRequest"}}], "responses": {"200": {"description": "Merged record", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Validation failed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "409": {"description": "Duplicate unique value", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}},
            "delete": {"tags": ["Events"], "summary": "Delete event", "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/dashboard/stats": {
            "get": {"tags": ["Dashboard"], "summary": "Dashboard statistics", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/activities": {
            "get": {"tags": ["Dashboard"], "summary": "Activity feed, newest first", "parameters": [{"name": "limit", "in": "query", "type": "integer", "required": false}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "400": {"description": "Invalid limit", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        },
        "/api/exports/{resource}": {
            "get": {"tags": ["Exports"], "summary": "Export a collection", "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "parameters": [{"name": "resource", "in": "path", "required": true, "type": "string", "enum": ["students", "teachers", "classes", "enrollments", "attendance", "grades", "events", "activities"]}, {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"], "required": false}], "responses": {"200": {"description": "File download", "schema": {"type": "file"}}, "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}, "404": {"description": "Unknown resource", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}}}
        }
    },
    "definitions": {
        "LoginRequest": {"type": "object", "required": ["username", "password"], "properties": {"username": {"type": "string"}, "password": {"type": "string"}}},
        "CreateUserRequest": {"type": "object", "required": ["username", "password", "role", "fullName", "email"], "properties": {"username": {"type": "string", "minLength": 3}, "password": {"type": "string", "minLength": 6}, "role": {"type": "string", "enum": ["admin", "teacher", "staff"]}, "fullName": {"type": "string"}, "email": {"type": "string", "format": "email"}, "avatar": {"type": "string"}}},
        "CreateStudentRequest": {"type": "object", "required": ["studentId", "name", "gender", "dateOfBirth", "gradeLevel", "section", "enrollmentDate"], "properties": {"studentId": {"type": "string"}, "name": {"type": "string"}, "gender": {"type": "string", "enum": ["male", "female", "other"]}, "dateOfBirth": {"type": "string", "format": "date", "example": "2024-10-07"}, "email": {"type": "string", "format": "email"}, "phone": {"type": "string"}, "address": {"type": "string"}, "guardianName": {"type": "string"}, "guardianPhone": {"type": "string"}, "guardianEmail": {"type": "string", "format": "email"}, "gradeLevel": {"type": "string"}, "section": {"type": "string"}, "enrollmentDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "avatar": {"type": "string"}}},
        "CreateTeacherRequest": {"type": "object", "required": ["teacherId", "name", "email", "joinDate"], "properties": {"teacherId": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string", "format": "email"}, "phone": {"type": "string"}, "qualification": {"type": "string"}, "joinDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "subjects": {"type": "array", "items": {"type": "string"}}, "avatar": {"type": "string"}, "userId": {"type": "integer"}}},
        "CreateClassRequest": {"type": "object", "required": ["className", "classCode", "gradeLevel", "section", "academicYear"], "properties": {"className": {"type": "string"}, "classCode": {"type": "string"}, "gradeLevel": {"type": "string"}, "section": {"type": "string"}, "description": {"type": "string"}, "teacherId": {"type": "integer"}, "schedule": {"type": "string"}, "roomNumber": {"type": "string"}, "academicYear": {"type": "string"}}},
        "CreateEnrollmentRequest": {"type": "object", "required": ["classId", "studentId", "enrollmentDate"], "properties": {"classId": {"type": "integer"}, "studentId": {"type": "integer"}, "enrollmentDate": {"type": "string", "format": "date", "example": "2024-10-07"}}},
        "CreateAttendanceRequest": {"type": "object", "required": ["classId", "studentId", "date", "status"], "properties": {"classId": {"type": "integer"}, "studentId": {"type": "integer"}, "date": {"type": "string", "format": "date", "example": "2024-10-07"}, "status": {"type": "string", "enum": ["present", "absent", "late", "excused"]}, "notes": {"type": "string"}}},
        "CreateGradeRequest": {"type": "object", "required": ["classId", "studentId", "assignmentName", "assignmentType", "maxScore", "score", "gradedDate"], "properties": {"classId": {"type": "integer"}, "studentId": {"type": "integer"}, "assignmentName": {"type": "string"}, "assignmentType": {"type": "string", "enum": ["exam", "quiz", "homework", "project"]}, "maxScore": {"type": "number"}, "score": {"type": "number"}, "gradedDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "comments": {"type": "string"}}},
        "CreateEventRequest": {"type": "object", "required": ["title", "startDate", "type"], "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "startDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "endDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "startTime": {"type": "string", "example": "09:00"}, "endTime": {"type": "string", "example": "10:30"}, "allDay": {"type": "boolean"}, "location": {"type": "string"}, "type": {"type": "string", "enum": ["exam", "meeting", "holiday", "activity"]}}},
        "UpdateUserRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"username": {"type": "string", "minLength": 3}, "password": {"type": "string", "minLength": 6}, "role": {"type": "string", "enum": ["admin", "teacher", "staff"]}, "fullName": {"type": "string"}, "email": {"type": "string", "format": "email"}, "avatar": {"type": "string"}}},
        "UpdateStudentRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"studentId": {"type": "string"}, "name": {"type": "string"}, "gender": {"type": "string", "enum": ["male", "female", "other"]}, "dateOfBirth": {"type": "string", "format": "date", "example": "2024-10-07"}, "email": {"type": "string", "format": "email"}, "phone": {"type": "string"}, "address": {"type": "string"}, "guardianName": {"type": "string"}, "guardianPhone": {"type": "string"}, "guardianEmail": {"type": "string", "format": "email"}, "gradeLevel": {"type": "string"}, "section": {"type": "string"}, "enrollmentDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "avatar": {"type": "string"}}},
        "UpdateTeacherRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"teacherId": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string", "format": "email"}, "phone": {"type": "string"}, "qualification": {"type": "string"}, "joinDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "subjects": {"type": "array", "items": {"type": "string"}}, "avatar": {"type": "string"}, "userId": {"type": "integer", "description": "0 unlinks the account"}}},
        "UpdateClassRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"className": {"type": "string"}, "classCode": {"type": "string"}, "gradeLevel": {"type": "string"}, "section": {"type": "string"}, "description": {"type": "string"}, "teacherId": {"type": "integer", "description": "0 unassigns the teacher"}, "schedule": {"type": "string"}, "roomNumber": {"type": "string"}, "academicYear": {"type": "string"}}},
        "UpdateEnrollmentRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"classId": {"type": "integer"}, "studentId": {"type": "integer"}, "enrollmentDate": {"type": "string", "format": "date", "example": "2024-10-07"}}},
        "UpdateAttendanceRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"classId": {"type": "integer"}, "studentId": {"type": "integer"}, "date": {"type": "string", "format": "date", "example": "2024-10-07"}, "status": {"type": "string", "enum": ["present", "absent", "late", "excused"]}, "notes": {"type": "string"}}},
        "UpdateGradeRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"classId": {"type": "integer"}, "studentId": {"type": "integer"}, "assignmentName": {"type": "string"}, "assignmentType": {"type": "string", "enum": ["exam", "quiz", "homework", "project"]}, "maxScore": {"type": "number"}, "score": {"type": "number"}, "gradedDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "comments": {"type": "string"}}},
        "UpdateEventRequest": {"type": "object", "description": "Only supplied fields are changed", "properties": {"title": {"type": "string"}, "description": {"type": "string"}, "startDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "endDate": {"type": "string", "format": "date", "example": "2024-10-07"}, "startTime": {"type": "string", "example": "09:00"}, "endTime": {"type": "string", "example": "10:30"}, "allDay": {"type": "boolean"}, "location": {"type": "string"}, "type": {"type": "string", "enum": ["exam", "meeting", "holiday", "activity"]}}},
        "FieldError": {"type": "object", "properties": {"field": {"type": "string"}, "message": {"type": "string"}}},
        "APIError": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}, "status": {"type": "integer"}, "details": {"type": "array", "items": {"$ref": "#/definitions/FieldError"}}}},
        "ResponseEnvelope": {"type": "object", "properties": {"data": {"type": "object"}, "error": {"$ref": "#/definitions/APIError"}}}
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}

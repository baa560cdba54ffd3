package services

// Services defined in this package:
// - CourseService: course CRUD over the in-memory store
// - StudentService: read access to seeded students
// - EnrolmentService: enrolment rules (existence, uniqueness) and enriched views
// - ReportService: per-course enrolment summary
// - CourseDetailService: read-only course detail catalogue behind a read-through cache

package media

import "time"

const (
	KindTeacher = "Teacher"
	KindStudent = "Student"
)

type Item struct {
	ID          int64     `json:"id"`
	Kind        string    `json:"-"`
	TeacherName *string   `json:"teacherName,omitempty"`
	MediaType   string    `json:"mediaType"`
	FileURL     string    `json:"fileUrl"`
	Caption     *string   `json:"caption,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type IntroContent struct {
	VideoURL  *string `json:"videoUrl,omitempty"`
	PosterURL *string `json:"posterUrl,omitempty"`
}

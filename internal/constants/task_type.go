package constants

type TaskType string

const TaskTypeAnnotation TaskType = "annotation"

const DefaultAttachmentType = "image"

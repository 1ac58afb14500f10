package handlers

import "errors"

var errTemplateMissing = errors.New("layout template not found")

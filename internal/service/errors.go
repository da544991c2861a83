package service

import "errors"

var ErrValidation = errors.New("dữ liệu đầu vào không hợp lệ")
var ErrNotAuthenticated = errors.New("chưa đăng nhập")
var ErrUserAlreadyExists = errors.New("email đã được đăng ký")
var ErrTokenInvalid = errors.New("token không hợp lệ hoặc đã hết hạn")

// ErrInvalidCredentials dành cho bước kiểm tra credential thật khi thay mock
// login bằng backend auth thực sự; mock hiện tại không bao giờ trả về lỗi này
// với credential không rỗng.
var ErrInvalidCredentials = errors.New("email hoặc mật khẩu không đúng")

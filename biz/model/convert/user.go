package convert

import (
	"gymweb/biz/model/domain"
	"gymweb/biz/model/dto"
	"gymweb/biz/model/storage"
)

func UserDomainToRecord(u *domain.User) *storage.UserRecord {
	if u == nil {
		return nil
	}
	return &storage.UserRecord{
		GormModel: storage.GormModel{
			CreatedAt: u.CreatedAt,
			UpdatedAt: u.UpdatedAt,
		},
		UserId:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		Password: u.Password,
	}
}

func UserRecordToDomain(m *storage.UserRecord) *domain.User {
	if m == nil {
		return nil
	}
	return &domain.User{
		ID:        m.UserId,
		Username:  m.Username,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// UserToRO drops the password hash.
func UserToRO(u *domain.User) *domain.UserRO {
	if u == nil {
		return nil
	}
	return &domain.UserRO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

func UserROToResp(ro *domain.UserRO) *dto.UserResp {
	if ro == nil {
		return nil
	}
	return &dto.UserResp{
		UserID:   ro.ID,
		Username: ro.Username,
		Email:    ro.Email,
	}
}

func UserROsToResp(ros []*domain.UserRO) []*dto.UserResp {
	out := make([]*dto.UserResp, 0, len(ros))
	for _, ro := range ros {
		out = append(out, UserROToResp(ro))
	}
	return out
}

func CreateUserReqToDomain(req *dto.CreateUserReq) *domain.UserRegister {
	return &domain.UserRegister{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

func UpdateUserReqToDomain(req *dto.UpdateUserReq) *domain.UserRegister {
	return &domain.UserRegister{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}
}

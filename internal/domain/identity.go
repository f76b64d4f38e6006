package domain

// OwnerRef - создатель маршрута. Заполнено ровно одно поле.
type OwnerRef struct {
	UserID  string `json:"userId,omitempty"`
	AdminID string `json:"adminId,omitempty"`
}

func (o OwnerRef) IsZero() bool {
	return o.UserID == "" && o.AdminID == ""
}

// Identity - вызывающий пользователь, полученный от сервиса сессий
type Identity struct {
	UserID  string `json:"user_id,omitempty"`
	AdminID string `json:"admin_id,omitempty"`
}

// Anonymous - отсутствие сессии
var Anonymous = Identity{}

func (i Identity) IsAuthenticated() bool {
	return i.UserID != "" || i.AdminID != ""
}

func (i Identity) IsAdmin() bool {
	return i.AdminID != ""
}

// OwnerRef возвращает ссылку на владельца. Админ имеет приоритет.
func (i Identity) OwnerRef() OwnerRef {
	if i.AdminID != "" {
		return OwnerRef{AdminID: i.AdminID}
	}
	return OwnerRef{UserID: i.UserID}
}

// CanModify - владелец или админ
func (i Identity) CanModify(route *Route) bool {
	if !i.IsAuthenticated() || route == nil {
		return false
	}
	if i.IsAdmin() {
		return true
	}
	return route.Owner.UserID != "" && route.Owner.UserID == i.UserID
}

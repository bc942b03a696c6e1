package services

import (
	"storefront/internal/app/deps"
	"storefront/internal/core/services"
	createcategory "storefront/internal/core/services/create_category"
	createcoupon "storefront/internal/core/services/create_coupon"
	deletecategory "storefront/internal/core/services/delete_category"
	deletecoupon "storefront/internal/core/services/delete_coupon"
	listcategories "storefront/internal/core/services/list_categories"
	listcoupons "storefront/internal/core/services/list_coupons"
	loginwithemail "storefront/internal/core/services/log_in_with_email"
	"storefront/internal/core/services/register"
	resetpassword "storefront/internal/core/services/reset_password"
	sendpasswordresettoken "storefront/internal/core/services/send_password_reset_token"
	updatecategory "storefront/internal/core/services/update_category"
	updatecoupon "storefront/internal/core/services/update_coupon"
)

type Services struct {
	Register               services.Service[register.Input, register.Result]
	LogInWithEmail         services.Service[loginwithemail.Input, loginwithemail.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]

	ListCategories services.Service[listcategories.Input, listcategories.Result]
	CreateCategory services.Service[createcategory.Input, createcategory.Result]
	UpdateCategory services.Service[updatecategory.Input, updatecategory.Result]
	DeleteCategory services.Service[deletecategory.Input, deletecategory.Result]

	ListCoupons  services.Service[listcoupons.Input, listcoupons.Result]
	CreateCoupon services.Service[createcoupon.Input, createcoupon.Result]
	UpdateCoupon services.Service[updatecoupon.Input, updatecoupon.Result]
	DeleteCoupon services.Service[deletecoupon.Input, deletecoupon.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.Register = register.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.SessionTokenIssuer,
		deps.Notifier,
		deps.Now,
	)
	s.LogInWithEmail = loginwithemail.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.SessionTokenIssuer,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenGenerator,
		deps.Notifier,
		deps.Config.PasswordResetBaseURL,
		deps.Config.PasswordResetValidDuration,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenGenerator,
		deps.PasswordHasher,
		deps.Now,
	)

	s.ListCategories = listcategories.New(deps.Logger, deps.CategoryRepository)
	s.CreateCategory = createcategory.New(deps.Logger, deps.CategoryRepository, deps.Now)
	s.UpdateCategory = updatecategory.New(deps.Logger, deps.CategoryRepository)
	s.DeleteCategory = deletecategory.New(deps.Logger, deps.CategoryRepository)

	s.ListCoupons = listcoupons.New(deps.Logger, deps.CouponRepository)
	s.CreateCoupon = createcoupon.New(deps.Logger, deps.CouponRepository, deps.Now)
	s.UpdateCoupon = updatecoupon.New(deps.Logger, deps.CouponRepository)
	s.DeleteCoupon = deletecoupon.New(deps.Logger, deps.CouponRepository)

	return s
}

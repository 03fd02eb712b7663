package services

import (
	"adikart/internal/app/deps"
	"adikart/internal/core/services"
	"adikart/internal/core/services/auth"
	createpaymentorder "adikart/internal/core/services/create_payment_order"
	createproduct "adikart/internal/core/services/create_product"
	deleteproduct "adikart/internal/core/services/delete_product"
	getuserbysessiontoken "adikart/internal/core/services/get_user_by_session_token"
	listproducts "adikart/internal/core/services/list_products"
	login "adikart/internal/core/services/log_in"
	logout "adikart/internal/core/services/log_out"
	provisionadmin "adikart/internal/core/services/provision_admin"
	resetpassword "adikart/internal/core/services/reset_password"
	sendpasswordresettoken "adikart/internal/core/services/send_password_reset_token"
	signup "adikart/internal/core/services/sign_up"
	updateproduct "adikart/internal/core/services/update_product"
	verifypayment "adikart/internal/core/services/verify_payment"
)

type Services struct {
	SignUp                 services.Service[signup.Input, signup.Result]
	LogIn                  services.Service[login.Input, login.Result]
	LogOut                 services.Service[logout.Input, logout.Result]
	GetUserBySessionToken  services.Service[getuserbysessiontoken.Input, getuserbysessiontoken.Result]
	SendPasswordResetToken services.Service[sendpasswordresettoken.Input, sendpasswordresettoken.Result]
	ResetPassword          services.Service[resetpassword.Input, resetpassword.Result]
	ProvisionAdmin         services.Service[provisionadmin.Input, provisionadmin.Result]

	ListProducts  services.Service[listproducts.Input, listproducts.Result]
	CreateProduct services.Service[createproduct.Input, createproduct.Result]
	UpdateProduct services.Service[updateproduct.Input, updateproduct.Result]
	DeleteProduct services.Service[deleteproduct.Input, deleteproduct.Result]

	CreatePaymentOrder services.Service[createpaymentorder.Input, createpaymentorder.Result]
	VerifyPayment      services.Service[verifypayment.Input, verifypayment.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)
	s.LogIn = login.New(
		deps.Logger,
		deps.UserRepository,
		deps.SessionRepository,
		deps.PasswordHasher,
		deps.SessionTokenGenerator,
		deps.Now,
	)
	s.LogOut = logout.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.GetUserBySessionToken = getuserbysessiontoken.New(
		deps.Logger,
		deps.SessionRepository,
	)
	s.SendPasswordResetToken = sendpasswordresettoken.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenGenerator,
		deps.ResetTokenHasher,
		deps.ResetTokenSender,
		deps.Now,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenHasher,
		deps.PasswordHasher,
		deps.Now,
	)
	s.ProvisionAdmin = provisionadmin.New(
		deps.Logger,
		deps.UnitOfWork,
		deps.PasswordHasher,
		deps.Now,
	)

	s.ListProducts = listproducts.New(
		deps.Logger,
		deps.ProductRepository,
	)
	s.CreateProduct = auth.WithAuthentication(
		deps.SessionRepository,
		createproduct.New(
			deps.Logger,
			deps.ProductRepository,
			deps.Now,
		),
	)
	s.UpdateProduct = auth.WithAuthentication(
		deps.SessionRepository,
		updateproduct.New(
			deps.Logger,
			deps.ProductRepository,
			deps.Now,
		),
	)
	s.DeleteProduct = auth.WithAuthentication(
		deps.SessionRepository,
		deleteproduct.New(
			deps.Logger,
			deps.ProductRepository,
		),
	)

	s.CreatePaymentOrder = auth.WithAuthentication(
		deps.SessionRepository,
		createpaymentorder.New(
			deps.Logger,
			deps.PaymentGateway,
			deps.ReceiptGenerator,
		),
	)
	s.VerifyPayment = auth.WithAuthentication(
		deps.SessionRepository,
		verifypayment.New(
			deps.Logger,
			deps.SignatureVerifier,
			deps.PaidOrderPublisher,
			deps.Now,
		),
	)

	return s
}

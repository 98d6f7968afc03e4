package service

// Fixed pools the sample data generator draws from.

var seedDepartments = []string{"CSE", "ECE", "ME", "EEE", "IT", "Civil"}

var seedRoles = []string{
	"Software Engineer", "Data Analyst", "Product Manager",
	"ML Engineer", "Full Stack Developer", "DevOps Engineer",
}

var seedFirstNames = []string{
	"Rahul", "Priya", "Amit", "Sneha", "Vikram", "Anjali", "Rohan", "Neha", "Karan", "Pooja",
	"Aditya", "Divya", "Arjun", "Riya", "Sanjay", "Kavya", "Nikhil", "Shreya", "Akash", "Tanvi",
	"Varun", "Ananya", "Harsh", "Ishita", "Gaurav", "Meera", "Siddharth", "Nisha", "Manish", "Sakshi",
	"Rajesh", "Preeti", "Abhishek", "Swati", "Deepak", "Ritika", "Suresh", "Pallavi", "Vishal", "Megha",
	"Naveen", "Simran", "Ashish", "Aditi", "Mohit", "Kritika", "Sandeep", "Shweta", "Pankaj", "Aarti",
}

var seedLastNames = []string{"Sharma", "Verma", "Singh", "Kumar", "Reddy", "Gupta", "Patel", "Nair", "Iyer", "Rao"}

type seedCompany struct {
	name     string
	domain   string
	pkg      float64
	location string
}

var seedCompanies = []seedCompany{
	{"TechCorp Solutions", "IT Services", 8.5, "Bangalore"},
	{"DataWorks Inc", "Product", 12.0, "Hyderabad"},
	{"CloudNine Systems", "IT Services", 7.5, "Pune"},
	{"InnovateTech", "Product", 15.0, "Bangalore"},
	{"FinanceHub", "Finance", 10.0, "Mumbai"},
	{"EcomGiant", "E-commerce", 11.5, "Bangalore"},
	{"HealthTech Solutions", "Healthcare", 9.0, "Chennai"},
	{"ConsultPro", "Consulting", 13.5, "Delhi"},
	{"AI Innovations", "Product", 16.0, "Bangalore"},
	{"WebDev Masters", "IT Services", 6.5, "Pune"},
}

const (
	seedStudentCount = 50
	seedDriveCount   = 20
	seedMinOffers    = 30
	seedMaxOffers    = 40
)

package entity

// Category is one entry of the tracked GEM category registry.
type Category struct {
	Name       string `json:"name"`
	CategoryId string `json:"id"`
}

// DefaultCategories is the registry used when no category file is configured.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Enterprise Storage", CategoryId: "home_info_co87882452_medi_en44773564"},
		{Name: "Library Management Software", CategoryId: "home_info_soft_4316374606_libr"},
		{Name: "Development Tools For Web Application / Portal Application Software", CategoryId: "home_info_soft_4377702185_deve"},
		{Name: "Software Based Solution For Mobile Devices And Cdr Analysis", CategoryId: "home_info_soft_cont_soft"},
		{Name: "Electronic Mail And Messaging Software", CategoryId: "home_info_soft_info_el60210130"},
		{Name: "Vulnerability Management / Assessment Software (v2)", CategoryId: "home_info_soft_netw_vu05187046"},
		{Name: "Data Loss Prevention (dlp) Software", CategoryId: "home_info_soft_secu_da04615711"},
		{Name: "Live Remote Temperature And Humidity Monitoring And Alert System", CategoryId: "home_info_so18353664_indi_live"},
		{Name: "Network Monitoring Software (v2)", CategoryId: "home_info_soft_ne74724043_netw"},
		{Name: "Api Management Software", CategoryId: "home_info_soft_info_apim"},
		{Name: "Cyber Security Audit - Infrastructure Audit, Security And Compliance Audit", CategoryId: "services_home_cybe_cybe"},
		{Name: "Vulnerability And Penetration Testing - Web Application, Mobile Applications...", CategoryId: "services_home_cybe_vuln"},
		{Name: "Artificial Intelligence, Machine Learning, And Deep Learning As A Service...", CategoryId: "services_home_emer_arti"},
		{Name: "E-learning Content Development - Igot; Translation Of Existing E-learning Content...", CategoryId: "services_home_mult_elea"},
		{Name: "Cloud Service", CategoryId: "home_clou"},
		{Name: "Data Analytics Service", CategoryId: "home_da84613414"},
		{Name: "Backup Software", CategoryId: "home_info_co84875567_so08531025_back"},
		{Name: "Enterprise Management System", CategoryId: "home_info_co84875567_soft_ente"},
		{Name: "Web Application Firewall", CategoryId: "home_info_data_ne51580770_weba"},
		{Name: "Hyper Converged Infrastructure For Data Centers", CategoryId: "home_info_so18353664_data_hype"},
		{Name: "Document Management Software", CategoryId: "home_info_soft_4325585261_docu"},
		{Name: "Backup And Replication Software Backup Or Archival Software", CategoryId: "home_info_soft_4336483473_back"},
		{Name: "Network Management  Software", CategoryId: "home_info_soft_4384644547_netw"},
		{Name: "Business Intelligence And Data Analysis Software", CategoryId: "home_info_soft_draf_busi"},
		{Name: "Customer Relationship Management Software", CategoryId: "home_info_soft_draf_cust"},
		{Name: "Data Base Management System Software", CategoryId: "home_info_soft_draf_data"},
		{Name: "Artifical Intelligence (ai) Based Video Analytics Software", CategoryId: "home_info_soft_indu_arti"},
		{Name: "Cyber Security Software / Appliances", CategoryId: "home_info_soft_secu_cy58162858"},
		{Name: "Audit And Compliance Software", CategoryId: "home_info_soft_soft_audi"},
		{Name: "System Integration For Networking And Computing Devices", CategoryId: "home_info_data_netw_syst"},
		{Name: "Ai System", CategoryId: "home_info_comp_comp_aisy"},
		{Name: "IT Professional Outsourcing Service", CategoryId: "services_home_itpr"},
		{Name: "IT Consultants Hiring Services", CategoryId: "services_home_pr22455282_co24172185"},
		{Name: "Application Development", CategoryId: "services_home_appl"},
	}
}
